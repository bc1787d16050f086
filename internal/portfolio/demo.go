package portfolio

import (
	"time"

	"github.com/Zachkp/folio/internal/dto"
)

var (
	AboutMe = `Passionate full-stack developer with 5+ years of experience building scalable web applications.
	I love creating user-friendly interfaces and robust backend systems.`

	ProjectOne = `A full-stack e-commerce solution built with React, Node.js, and PostgreSQL. Features include
	user authentication, payment processing, and inventory management.`

	ProjectTwo = `A collaborative task management application with real-time updates, drag-and-drop
	functionality, and team collaboration features.`

	ProjectThree = `A responsive weather dashboard that displays current conditions and forecasts for
	multiple cities with beautiful data visualizations.`
)

// Demo is the in-memory profile shown when nothing is stored for a user.
func Demo() Profile {
	return Profile{
		Name:     "Alex Johnson",
		Title:    "Full Stack Developer",
		Email:    "alex.johnson@email.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		Avatar:   "/static/placeholder.svg",
		Bio:      AboutMe,
		Skills:   []string{"React", "Node.js", "TypeScript", "Python", "PostgreSQL", "AWS", "Docker", "GraphQL"},
		Social: Social{
			GitHub:   "https://github.com/alexjohnson",
			LinkedIn: "https://linkedin.com/in/alexjohnson",
		},
		Projects: []Project{
			{
				Title:        "E-commerce Platform",
				Description:  ProjectOne,
				Technologies: []string{"React", "Node.js", "PostgreSQL", "Stripe"},
				LiveURL:      "https://example-ecommerce.com",
				SourceURL:    "https://github.com/alexjohnson/ecommerce-platform",
				Image:        "/static/placeholder.svg",
			},
			{
				Title:        "Task Management App",
				Description:  ProjectTwo,
				Technologies: []string{"React", "TypeScript", "Socket.io", "MongoDB"},
				LiveURL:      "https://example-tasks.com",
				SourceURL:    "https://github.com/alexjohnson/task-manager",
				Image:        "/static/placeholder.svg",
			},
			{
				Title:        "Weather Dashboard",
				Description:  ProjectThree,
				Technologies: []string{"Vue.js", "Chart.js", "OpenWeather API", "Tailwind CSS"},
				LiveURL:      "https://example-weather.com",
				SourceURL:    "https://github.com/alexjohnson/weather-dashboard",
				Image:        "/static/placeholder.svg",
			},
		},
		Experience: ExperienceEntries([]dto.Experience{
			{
				Company:     "TechCorp Solutions",
				Position:    "Senior Full Stack Developer",
				StartDate:   day(2022, time.January, 1),
				CurrentJob:  true,
				Description: "Lead development of client-facing web applications, mentor junior developers, and collaborate with cross-functional teams to deliver high-quality software solutions.",
			},
			{
				Company:     "StartupXYZ",
				Position:    "Full Stack Developer",
				StartDate:   day(2020, time.June, 1),
				EndDate:     day(2021, time.December, 31),
				Description: "Developed and maintained multiple web applications using React and Node.js. Implemented CI/CD pipelines and improved application performance by 40%.",
			},
		}),
		Education: EducationEntries([]dto.Education{
			{
				Institution: "University of Technology",
				Degree:      "Bachelor of Science in Computer Science",
				StartDate:   day(2016, time.September, 1),
				EndDate:     day(2020, time.May, 31),
				Description: "Graduated Magna Cum Laude with focus on software engineering and database systems.",
			},
		}),
	}
}

func day(y int, m time.Month, d int) *dto.Date {
	v := dto.NewDate(y, m, d)
	return &v
}
