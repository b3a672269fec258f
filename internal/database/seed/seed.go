package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"cmsapi/internal/config"
	"cmsapi/internal/model"
	"cmsapi/internal/repository"
	"cmsapi/internal/service"
)

// EnsureSeeded bootstraps the admin account and fills empty content
// collections with starter records. Collections that already hold data are
// left alone, so this is safe to run on every start.
func EnsureSeeded(ctx context.Context, repo repository.ContentRepository, content service.ContentService, admin config.AdminConfig) error {
	if err := ensureAdmin(ctx, repo, admin); err != nil {
		return err
	}

	for _, set := range sampleSets {
		count, err := repo.Count(ctx, set.res, nil)
		if err != nil {
			return fmt.Errorf("count %s: %w", set.res.Collection, err)
		}
		if count > 0 {
			continue
		}

		for _, rec := range set.records {
			if _, err := content.Create(ctx, set.res, rec); err != nil {
				return fmt.Errorf("seed %s: %w", set.res.Collection, err)
			}
		}
		logEvent("seed_collection", map[string]any{
			"collection": set.res.Collection,
			"records":    len(set.records),
		})
	}

	return nil
}

func ensureAdmin(ctx context.Context, repo repository.ContentRepository, admin config.AdminConfig) error {
	if admin.Username == "" || admin.Password == "" {
		return nil
	}

	count, err := repo.Count(ctx, model.Admins, repository.Filter{}.Eq("username", admin.Username))
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = repo.Create(ctx, model.Admins, model.Record{
		"id":        uuid.New().String(),
		"username":  admin.Username,
		"password":  service.HashPassword(admin.Password),
		"createdAt": model.Now(),
	})
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	logEvent("seed_admin", map[string]any{"username": admin.Username})
	return nil
}

func logEvent(event string, fields map[string]any) {
	fields["component"] = "seed"
	fields["event"] = event
	fields["level"] = "info"
	fields["ts"] = time.Now().UTC().Format(time.RFC3339Nano)

	b, err := json.Marshal(fields)
	if err != nil {
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}

type sampleSet struct {
	res     *model.Resource
	records []model.Record
}

var sampleSets = []sampleSet{
	{res: model.Programs, records: samplePrograms},
	{res: model.News, records: sampleNews},
	{res: model.Partnerships, records: samplePartnerships},
	{res: model.Team, records: sampleTeam},
	{res: model.Events, records: sampleEvents},
	{res: model.FAQs, records: sampleFAQs},
	{res: model.StaticContent, records: sampleStaticContent},
}

var samplePrograms = []model.Record{
	{
		"title":             "Engineering Innovation - Stanford University",
		"description":       "Advanced engineering program focusing on Silicon Valley innovation, startup methodologies, and cutting-edge technology development with hands-on industry exposure.",
		"partnerUniversity": "Stanford University, USA",
		"duration":          "1 Semester (5 months)",
		"eligibility":       "3rd/4th year Engineering students with CGPA >= 8.0",
		"deadline":          "January 20, 2025",
		"applicationLink":   "https://forms.google.com/stanford-engineering",
		"status":            "Active",
	},
	{
		"title":             "International Business - London School of Economics",
		"description":       "Global business strategy program offering deep insights into international markets, finance, and economic policy.",
		"partnerUniversity": "London School of Economics, UK",
		"duration":          "6 months",
		"eligibility":       "MBA/BBA students with minimum 80% marks",
		"deadline":          "March 10, 2025",
		"applicationLink":   "https://forms.google.com/lse-business",
		"status":            "Active",
	},
	{
		"title":             "Computer Science & AI - ETH Zurich",
		"description":       "World-class computer science program specializing in artificial intelligence, machine learning, and quantum computing.",
		"partnerUniversity": "ETH Zurich, Switzerland",
		"duration":          "1 Academic Year",
		"eligibility":       "CS/IT students with CGPA >= 8.5 and research experience",
		"deadline":          "December 30, 2024",
		"applicationLink":   "https://forms.google.com/eth-cs",
		"status":            "Active",
	},
}

var sampleNews = []model.Record{
	{
		"title":    "New MoU Signed with Harvard University",
		"content":  "Medi-Caps University is proud to announce a new Memorandum of Understanding with Harvard University for collaborative research and student exchange programs. This partnership will open new avenues for our students to experience world-class education.",
		"category": "MoU",
		"date":     "2025-12-01T00:00:00",
		"author":   "OIA Team",
		"tags":     []string{"partnership", "harvard", "mou"},
		"featured": true,
	},
	{
		"title":    "Students Win International Innovation Award",
		"content":  "Three Medi-Caps students have won the prestigious Global Innovation Challenge in Berlin, competing against 200+ teams from 50 countries.",
		"category": "Achievement",
		"date":     "2025-11-15T00:00:00",
		"author":   "OIA Team",
		"tags":     []string{"achievement", "students", "innovation"},
		"featured": true,
	},
	{
		"title":    "New Scholarship Program for International Students",
		"content":  "Announcing a new scholarship program covering 50% tuition for exceptional international students. Applications open from January 2025.",
		"category": "Announcement",
		"date":     "2025-09-05T00:00:00",
		"author":   "OIA Team",
		"tags":     []string{"scholarship", "admissions"},
		"featured": true,
	},
}

var samplePartnerships = []model.Record{
	{
		"partnerName": "Massachusetts Institute of Technology (MIT)",
		"type":        "Research",
		"country":     "United States",
		"details":     "Collaborative research in AI, robotics, and sustainable technology. Joint PhD programs available.",
		"status":      "Active",
		"signedDate":  "2023-05-15T00:00:00",
		"website":     "https://www.mit.edu",
		"benefits":    []string{"Research collaboration", "Student exchange", "Faculty visits"},
	},
	{
		"partnerName": "University of Oxford",
		"type":        "Dual Degree",
		"country":     "United Kingdom",
		"details":     "Dual degree programs in Medicine and Life Sciences with full credit transfer.",
		"status":      "Active",
		"signedDate":  "2022-09-20T00:00:00",
		"website":     "https://www.ox.ac.uk",
		"benefits":    []string{"Dual degrees", "Research opportunities", "Scholarships"},
	},
	{
		"partnerName": "National University of Singapore",
		"type":        "Student Exchange",
		"country":     "Singapore",
		"details":     "Semester exchange programs for engineering and business students.",
		"status":      "Active",
		"signedDate":  "2024-02-10T00:00:00",
		"website":     "https://www.nus.edu.sg",
		"benefits":    []string{"Semester exchange", "Cultural immersion", "Industry exposure"},
	},
}

var sampleTeam = []model.Record{
	{
		"name":             "Dr. Rajesh Kumar",
		"role":             "Director, Office of International Affairs",
		"bio":              "Dr. Kumar has over 20 years of experience in international education and has established partnerships with 50+ universities worldwide.",
		"email":            "rajesh.kumar@medicaps.ac.in",
		"phone":            "+91-731-1234567",
		"office":           "Admin Block, Room 301",
		"responsibilities": []string{"Strategic partnerships", "Policy development", "International collaborations"},
		"order":            float64(1),
		"is_leadership":    true,
	},
	{
		"name":             "Prof. Priya Sharma",
		"role":             "Associate Director, Student Mobility",
		"bio":              "Prof. Sharma specializes in student exchange programs and has coordinated mobility for over 500 students.",
		"email":            "priya.sharma@medicaps.ac.in",
		"phone":            "+91-731-1234568",
		"office":           "Admin Block, Room 302",
		"responsibilities": []string{"Student exchanges", "Program coordination", "Student counseling"},
		"order":            float64(2),
	},
}

var sampleEvents = []model.Record{
	{
		"title":        "International Education Fair 2025",
		"type":         "Conference",
		"description":  "Annual education fair featuring representatives from 30+ international universities.",
		"startDate":    "2025-03-15T10:00:00",
		"endDate":      "2025-03-15T17:00:00",
		"venue":        "Medi-Caps Main Auditorium",
		"organizer":    "Office of International Affairs",
		"participants": []string{"Harvard", "MIT", "Oxford", "Cambridge"},
		"featured":     true,
	},
	{
		"title":            "Global Research Collaboration Webinar",
		"type":             "Webinar",
		"description":      "Webinar on establishing international research partnerships and funding opportunities.",
		"startDate":        "2025-02-20T15:00:00",
		"endDate":          "2025-02-20T17:00:00",
		"venue":            "Online (Zoom)",
		"organizer":        "Dr. Rajesh Kumar",
		"featured":         true,
		"registrationLink": "https://zoom.us/webinar/register",
	},
}

var sampleFAQs = []model.Record{
	{
		"question": "How do I apply for student exchange programs?",
		"answer":   "To apply for student exchange programs, visit the Student Mobility section, select your desired program, and fill out the online application form. Ensure you meet the eligibility criteria and submit all required documents.",
		"category": "Mobility",
		"order":    float64(1),
		"featured": true,
	},
	{
		"question": "Do I need a visa to study at Medi-Caps University?",
		"answer":   "Yes, international students require a Student Visa (S-Visa) to study in India. Our International Admissions office provides comprehensive visa support and FRRO registration assistance.",
		"category": "Visas",
		"order":    float64(2),
		"featured": true,
	},
	{
		"question": "How can my university partner with Medi-Caps?",
		"answer":   "Universities interested in partnership can submit a proposal through the Global Partnerships section. Our team will review and contact you within 2 weeks to discuss collaboration opportunities.",
		"category": "Partnerships",
		"order":    float64(3),
		"featured": false,
	},
}

var sampleStaticContent = []model.Record{
	{
		"key":     "vision_mission",
		"title":   "Vision & Mission",
		"content": "# Our Vision\nTo establish Medi-Caps University as a globally recognized institution fostering international collaboration, cultural diversity, and academic excellence.\n\n# Our Mission\n- Promote student and faculty mobility through strategic partnerships\n- Facilitate research collaboration with leading international institutions\n- Provide comprehensive support to international students and scholars",
		"section": "about",
	},
	{
		"key":     "policies",
		"title":   "International Policies & Guidelines",
		"content": "# Credit Transfer Policy\nAll partner universities follow ECTS (European Credit Transfer System) with 1:1 credit mapping. Students must complete minimum 12 credits per semester abroad.\n\n# Visa Policy\nStudent visa applications must be submitted 6 weeks before program start. We provide complete FRRO registration support.",
		"section": "about",
	},
	{
		"key":     "why_medicaps",
		"title":   "Why Choose Medi-Caps University?",
		"content": "# Academic Excellence\n- NAAC A+ accredited institution\n- 50+ international partnerships\n- World-class faculty and research facilities\n\n# Global Exposure\n- Student exchange programs in 15+ countries\n- International internship opportunities\n- Multicultural campus environment",
		"section": "admissions",
	},
}
