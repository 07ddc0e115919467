package course

import "regexp"

// A rule maps raw program-name spellings onto one canonical display name.
// Rules are evaluated top to bottom and the first match wins, so the order
// encodes priority: specialization rules must stay above the generic branch
// rules they overlap with (a "Computer Science ... Artificial Intelligence
// ... Machine Learning" row has to resolve to the AI & ML specialization,
// not plain Computer Science). Reordering changes matching outcomes for
// historical data.
type rule struct {
	pattern   *regexp.Regexp
	canonical string
}

func re(expr string) *regexp.Regexp { return regexp.MustCompile(`(?i)` + expr) }

var courseRules = []rule{
	// Computer-science specializations.
	{re(`comp.*(artificial\s*intel\w*|\bai\b).*(machine\s*learn\w*|\bml\b)`), "Computer Science and Engineering (AI & ML)"},
	{re(`(artificial\s*intel\w*|\bai\b).*(machine\s*learn\w*|\bml\b)`), "Artificial Intelligence and Machine Learning"},
	{re(`comp.*(data\s*sc|\bds\b)`), "Computer Science and Engineering (Data Science)"},
	{re(`(artificial\s*intel\w*|\bai\b).*(data\s*sc|\bds\b)`), "Artificial Intelligence and Data Science"},
	{re(`artificial\s*intel\w*`), "Artificial Intelligence and Machine Learning"},
	{re(`data\s*sc`), "Computer Science and Engineering (Data Science)"},
	{re(`comp.*cyber`), "Computer Science and Engineering (Cyber Security)"},
	{re(`cyber\s*sec`), "Computer Science and Engineering (Cyber Security)"},
	{re(`comp.*(internet\s*of\s*things|\biot\b)`), "Computer Science and Engineering (IoT)"},
	{re(`internet\s*of\s*things|\biot\b`), "Computer Science and Engineering (IoT)"},
	{re(`comp.*block\s*chain`), "Computer Science and Engineering (Blockchain)"},
	{re(`block\s*chain`), "Computer Science and Engineering (Blockchain)"},
	{re(`comp.*business|\bcsbs\b`), "Computer Science and Business Systems"},
	{re(`machine\s*learn`), "Artificial Intelligence and Machine Learning"},

	// Generic branches, most specific spellings first.
	{re(`information\s*sc|\bise\b`), "Information Science and Engineering"},
	{re(`information\s*tech`), "Information Technology"},
	{re(`comp|\bcse\b`), "Computer Science and Engineering"},
	{re(`medical\s*electron`), "Medical Electronics Engineering"},
	{re(`electr\w*.*instrument`), "Electronics and Instrumentation Engineering"},
	{re(`electr\w*.*telecom`), "Electronics and Telecommunication Engineering"},
	{re(`electron\w*.*commun|\bece\b`), "Electronics and Communication Engineering"},
	{re(`electrical|\beee\b`), "Electrical and Electronics Engineering"},
	{re(`electron`), "Electronics and Communication Engineering"},
	{re(`mechatron`), "Mechatronics Engineering"},
	{re(`mechanical|\bmech\b`), "Mechanical Engineering"},
	{re(`civil`), "Civil Engineering"},
	{re(`chemical`), "Chemical Engineering"},
	{re(`bio\s*tech`), "Biotechnology"},
	{re(`bio\s*medical|\bbme\b`), "Biomedical Engineering"},
	{re(`aerospace`), "Aerospace Engineering"},
	{re(`aero`), "Aeronautical Engineering"},
	{re(`industrial`), "Industrial Engineering and Management"},
	{re(`automobile|automotive`), "Automobile Engineering"},
	{re(`robotic`), "Robotics and Automation"},
}
