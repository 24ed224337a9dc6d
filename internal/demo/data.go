// AngelaMos | 2026
// data.go

package demo

import (
	"time"

	"github.com/carterperez-dev/mentorax-api/internal/event"
	"github.com/carterperez-dev/mentorax-api/internal/field"
	"github.com/carterperez-dev/mentorax-api/internal/mentor"
	"github.com/carterperez-dev/mentorax-api/internal/scholarship"
)

func deadline(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 23, 59, 0, 0, time.UTC)
	return &t
}

var scholarships = []scholarship.CreateScholarshipRequest{
	{
		Name:           "Fulbright Foreign Student Program",
		Organization:   "U.S. Department of State",
		Description:    "Graduate study and research in the United States for international students.",
		Category:       "Graduate",
		Field:          "Any",
		Country:        "USA",
		Amount:         40000,
		Deadline:       deadline(2027, time.February, 15),
		Eligibility:    []string{"Bachelor's degree", "English proficiency", "Non-US citizen"},
		ApplicationURL: "https://foreign.fulbrightonline.org",
	},
	{
		Name:           "Chevening Scholarship",
		Organization:   "UK Foreign, Commonwealth & Development Office",
		Description:    "Fully funded one-year master's degree at any UK university.",
		Category:       "Graduate",
		Field:          "Any",
		Country:        "UK",
		Amount:         35000,
		Currency:       "GBP",
		Deadline:       deadline(2026, time.November, 5),
		Eligibility:    []string{"Two years of work experience", "Return to home country for two years"},
		ApplicationURL: "https://www.chevening.org",
	},
	{
		Name:           "DAAD Study Scholarship",
		Organization:   "German Academic Exchange Service",
		Description:    "Master's scholarships for graduates in engineering and the sciences.",
		Category:       "Graduate",
		Field:          "Engineering",
		Country:        "Germany",
		Amount:         14000,
		Currency:       "EUR",
		Deadline:       deadline(2026, time.October, 31),
		Eligibility:    []string{"Bachelor's degree completed within six years"},
		ApplicationURL: "https://www.daad.de",
	},
	{
		Name:         "Google Generation Scholarship",
		Organization: "Google",
		Description:  "Support for undergraduate computer science students from underrepresented groups.",
		Category:     "Undergraduate",
		Field:        "Computer Science",
		Country:      "USA",
		Amount:       10000,
		Status:       scholarship.StatusUpcoming,
		Eligibility:  []string{"Enrolled full time in a CS program"},
	},
}

var mentors = []mentor.CreateMentorRequest{
	{
		Name:            "Dr. Amara Okafor",
		Title:           "Senior Research Scientist",
		Company:         "DeepMind",
		Category:        "Research",
		Field:           "Computer Science",
		Country:         "UK",
		Bio:             "Machine learning researcher who mentors students applying to PhD programs.",
		Expertise:       []string{"Machine Learning", "PhD Applications", "Research Writing"},
		ExperienceYears: 12,
		Rating:          4.9,
	},
	{
		Name:            "Lucas Meyer",
		Title:           "Engineering Manager",
		Company:         "Siemens",
		Category:        "Industry",
		Field:           "Engineering",
		Country:         "Germany",
		Bio:             "Helps engineers navigate study and work opportunities in Germany.",
		Expertise:       []string{"Mechanical Engineering", "Career Planning", "DAAD"},
		ExperienceYears: 15,
		Rating:          4.7,
	},
	{
		Name:            "Priya Raman",
		Title:           "Admissions Consultant",
		Company:         "Independent",
		Category:        "Admissions",
		Field:           "Business",
		Country:         "USA",
		Bio:             "Former admissions reader guiding scholarship essays and interviews.",
		Expertise:       []string{"Essays", "Interviews", "MBA"},
		ExperienceYears: 8,
		Rating:          4.8,
		Status:          mentor.StatusBusy,
	},
}

var fields = []field.CreateFieldRequest{
	{
		Name:          "Computer Science",
		Description:   "Software, algorithms, systems, and artificial intelligence.",
		Category:      "STEM",
		Icon:          "cpu",
		CareerPaths:   []string{"Software Engineer", "Data Scientist", "Security Engineer"},
		AverageSalary: "$120,000",
		GrowthOutlook: "Much faster than average",
	},
	{
		Name:          "Engineering",
		Description:   "Design and build of machines, structures, and processes.",
		Category:      "STEM",
		Icon:          "gear",
		CareerPaths:   []string{"Mechanical Engineer", "Civil Engineer", "Electrical Engineer"},
		AverageSalary: "$95,000",
		GrowthOutlook: "Average",
	},
	{
		Name:          "Business",
		Description:   "Management, finance, and entrepreneurship.",
		Category:      "Social Sciences",
		Icon:          "briefcase",
		CareerPaths:   []string{"Consultant", "Financial Analyst", "Product Manager"},
		AverageSalary: "$85,000",
		GrowthOutlook: "Faster than average",
	},
}

var events = []event.CreateEventRequest{
	{
		Title:       "Winning Scholarship Essays",
		Description: "Live walkthrough of successful personal statements.",
		Category:    "Applications",
		Type:        event.TypeWebinar,
		Online:      true,
		Organizer:   "MentoraX",
		StartsAt:    deadline(2026, time.November, 12),
		Capacity:    500,
	},
	{
		Title:       "Study in Germany Info Day",
		Description: "Universities and DAAD representatives answer questions in person.",
		Category:    "Study Abroad",
		Type:        event.TypeConference,
		Location:    "Berlin",
		Organizer:   "DAAD",
		StartsAt:    deadline(2026, time.December, 3),
		Capacity:    300,
	},
}
