package domain

// JobRoles is the closed set of labels the classifier was trained on.
// The artifact loader rejects models whose leaves fall outside this set.
var JobRoles = []string{
	"Applications Developer",
	"CRM Technical Developer",
	"Database Developer",
	"Mobile Applications Developer",
	"Network Security Engineer",
	"Software Developer",
	"Software Engineer",
	"Software Quality Assurance (QA) / Testing",
	"Systems Security Administrator",
	"Technical Support",
	"UX Designer",
	"Web Developer",
}

// RelatedCareers maps each trained role to three adjacent career fields
// shown alongside a prediction.
var RelatedCareers = map[string][]string{
	"Applications Developer":                    {"Full Stack Developer", "Frontend Developer", "Backend Developer"},
	"CRM Technical Developer":                   {"Salesforce Developer", "Business Analyst", "ERP Developer"},
	"Database Developer":                        {"Data Engineer", "Database Administrator", "Data Analyst"},
	"Mobile Applications Developer":             {"iOS Developer", "Android Developer", "React Native Developer"},
	"Network Security Engineer":                 {"Cybersecurity Analyst", "Information Security Manager", "Penetration Tester"},
	"Software Developer":                        {"DevOps Engineer", "Software Architect", "Technical Lead"},
	"Software Engineer":                         {"Site Reliability Engineer", "Machine Learning Engineer", "Platform Engineer"},
	"Software Quality Assurance (QA) / Testing": {"Test Automation Engineer", "Quality Analyst", "Performance Test Engineer"},
	"Systems Security Administrator":            {"Cloud Security Engineer", "IT Security Consultant", "Compliance Officer"},
	"Technical Support":                         {"System Administrator", "Help Desk Manager", "IT Support Specialist"},
	"UX Designer":                               {"UI Designer", "Product Designer", "Interaction Designer"},
	"Web Developer":                             {"Frontend Developer", "Full Stack Developer", "Web Designer"},
}

// KnownJobRole reports whether label is one of the trained roles.
func KnownJobRole(label string) bool {
	for _, r := range JobRoles {
		if r == label {
			return true
		}
	}
	return false
}
