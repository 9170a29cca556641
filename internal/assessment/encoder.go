package assessment

import (
	"errors"
	"fmt"
)

// ErrUnknownOption indicates a categorical answer outside its fixed option set.
var ErrUnknownOption = errors.New("unknown option")

// VectorSize is the number of features the classifier was trained on.
const VectorSize = 21

// Assessment holds the raw questionnaire answers. Categorical answers are
// the human-readable option strings; Encode maps them to the integer codes
// the classifier expects.
type Assessment struct {
	LogicalQuotient int    `json:"logical_quotient_rating" binding:"min=1,max=10"`
	CodingSkills    int    `json:"coding_skills_rating" binding:"min=1,max=10"`
	Hackathons      int    `json:"hackathons" binding:"min=0,max=50"`
	PublicSpeaking  int    `json:"public_speaking_points" binding:"min=1,max=10"`
	SelfLearning    bool   `json:"self_learning_capability"`
	ExtraCourses    bool   `json:"extra_courses"`
	SeniorInputs    bool   `json:"senior_inputs"`
	TeamWork        bool   `json:"worked_in_teams"`
	Introvert       bool   `json:"introvert"`
	ReadingWriting  string `json:"reading_writing_skills" binding:"required"`
	Memory          string `json:"memory_capability" binding:"required"`
	HardWorker      bool   `json:"hard_worker"`
	SmartWorker     bool   `json:"smart_worker"`
	ManagementRole  bool   `json:"aspired_management_role"`
	TechnicalRole   bool   `json:"aspired_technical_role"`
	Subject         string `json:"interested_subject" binding:"required"`
	BookType        string `json:"book_type" binding:"required"`
	Certification   string `json:"certification" binding:"required"`
	Workshop        string `json:"workshop" binding:"required"`
	CompanyType     string `json:"company_type" binding:"required"`
	CareerArea      string `json:"career_area" binding:"required"`
}

// The lookup tables below reproduce the label encoding used when the
// classifier was trained. The integer codes are part of the model contract:
// changing any of them silently shifts predictions without raising errors.

// LevelCodes encodes the three-level ratings (memory, reading/writing).
var LevelCodes = map[string]int{
	"poor":      0,
	"medium":    1,
	"excellent": 2,
}

var SubjectCodes = map[string]int{
	"Computer Architecture": 0,
	"IOT":                   1,
	"Management":            2,
	"Software Engineering":  3,
	"cloud computing":       4,
	"data engineering":      5,
	"hacking":               6,
	"networks":              7,
	"parallel computing":    8,
	"programming":           9,
}

var BookTypeCodes = map[string]int{
	"Anthology":       1,
	"Autobiographies": 3,
	"Dictionaries":    9,
	"Guide":           13,
	"Health":          14,
	"Journals":        17,
	"Series":          28,
	"Travel":          29,
}

var CertificationCodes = map[string]int{
	"app development":      0,
	"distro making":        1,
	"full stack":           2,
	"hadoop":               3,
	"information security": 4,
	"machine learning":     5,
	"python":               6,
	"r programming":        7,
	"shell programming":    8,
}

var WorkshopCodes = map[string]int{
	"cloud computing":   0,
	"data science":      1,
	"database security": 2,
	"game development":  3,
	"hacking":           4,
	"system designing":  5,
	"testing":           6,
	"web technologies":  7,
}

var CompanyTypeCodes = map[string]int{
	"BPA":                               0,
	"Cloud Services":                    1,
	"Finance":                           2,
	"Product based":                     3,
	"SAaS services":                     4,
	"Sales and Marketing":               5,
	"Service Based":                     6,
	"Testing and Maintainance Services": 7,
	"Web Services":                      8,
	"product development":               9,
}

var CareerAreaCodes = map[string]int{
	"Business process analyst": 0,
	"cloud computing":          1,
	"developer":                2,
	"security":                 3,
	"system developer":         4,
	"testing":                  5,
}

// Encode produces the feature vector in the exact column order the
// classifier expects. Unknown categorical answers fail with an error; the
// original form widgets made them impossible, an HTTP client can not be
// trusted the same way.
func Encode(a Assessment) ([]float64, error) {
	rw, err := lookup(LevelCodes, "reading_writing_skills", a.ReadingWriting)
	if err != nil {
		return nil, err
	}
	memory, err := lookup(LevelCodes, "memory_capability", a.Memory)
	if err != nil {
		return nil, err
	}
	subject, err := lookup(SubjectCodes, "interested_subject", a.Subject)
	if err != nil {
		return nil, err
	}
	book, err := lookup(BookTypeCodes, "book_type", a.BookType)
	if err != nil {
		return nil, err
	}
	cert, err := lookup(CertificationCodes, "certification", a.Certification)
	if err != nil {
		return nil, err
	}
	workshop, err := lookup(WorkshopCodes, "workshop", a.Workshop)
	if err != nil {
		return nil, err
	}
	company, err := lookup(CompanyTypeCodes, "company_type", a.CompanyType)
	if err != nil {
		return nil, err
	}
	career, err := lookup(CareerAreaCodes, "career_area", a.CareerArea)
	if err != nil {
		return nil, err
	}

	return []float64{
		float64(a.LogicalQuotient),
		float64(a.CodingSkills),
		float64(a.Hackathons),
		float64(a.PublicSpeaking),
		boolCode(a.SelfLearning),
		boolCode(a.ExtraCourses),
		boolCode(a.SeniorInputs),
		boolCode(a.TeamWork),
		boolCode(a.Introvert),
		float64(rw),
		float64(memory),
		boolCode(a.HardWorker),
		boolCode(a.SmartWorker),
		boolCode(a.ManagementRole),
		boolCode(a.TechnicalRole),
		float64(subject),
		float64(book),
		float64(cert),
		float64(workshop),
		float64(company),
		float64(career),
	}, nil
}

func lookup(table map[string]int, field, value string) (int, error) {
	code, ok := table[value]
	if !ok {
		return 0, fmt.Errorf("%w: %s value %q", ErrUnknownOption, field, value)
	}
	return code, nil
}

func boolCode(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
