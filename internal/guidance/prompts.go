package guidance

import "fmt"

// Kind selects which guidance content to produce for a role.
type Kind string

const (
	KindRoadmap   Kind = "roadmap"
	KindProjects  Kind = "projects"
	KindResources Kind = "resources"
)

// ParseKind validates a kind supplied by a client.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRoadmap, KindProjects, KindResources:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown guidance kind %q", s)
}

type promptSpec struct {
	system      string
	temperature float64
	maxTokens   int
	user        func(role string) string
}

var promptSpecs = map[Kind]promptSpec{
	KindRoadmap: {
		system:      "You are a senior industry professional and expert career mentor with deep knowledge of current technology trends, hiring practices, and career development. You provide detailed, actionable, and industry-relevant guidance.",
		temperature: 0.7,
		maxTokens:   4000,
		user:        roadmapPrompt,
	},
	KindProjects: {
		system:      "You are a senior software architect and project manager who designs real-world, industry-relevant projects for skill development.",
		temperature: 0.8,
		maxTokens:   3000,
		user:        projectsPrompt,
	},
	KindResources: {
		system:      "You are an expert career coach and technical educator with comprehensive knowledge of learning resources across all technology domains.",
		temperature: 0.6,
		maxTokens:   3500,
		user:        resourcesPrompt,
	},
}

func roadmapPrompt(role string) string {
	return fmt.Sprintf(`You are an expert career mentor and industry professional with 15+ years of experience. Create a comprehensive, detailed learning roadmap for someone who wants to become a %[1]s.

REQUIREMENTS:
1. Structure: organize into clear phases with specific timelines
2. Specificity: include exact technologies, tools, and versions where relevant
3. Resources: provide specific course names, book titles, and platform recommendations
4. Projects: detail 5-7 hands-on projects with specific requirements
5. Certifications: list industry-recognized certifications with exam codes
6. Skills assessment: include measurable milestones for each phase
7. Industry context: explain current market trends and salary expectations
8. Career path: show progression from junior to senior levels

ROADMAP STRUCTURE:
## %[1]s Complete Learning Roadmap
### Career Overview (market demand, responsibilities, progression, outlook)
### Phase 1: Foundation (Months 1-3): core technologies, learning resources, beginner projects, milestone
### Phase 2: Intermediate (Months 4-8): advanced tooling, intermediate projects, networking, milestone
### Phase 3: Advanced (Months 9-12): expert-level skills, specialization, capstone projects, milestone
### Phase 4: Professional Development (Months 12+): certifications, soft skills, job preparation
### Detailed Project Portfolio: description, stack, features, time estimate, learning outcomes per project
### Comprehensive Resource Library: free resources, paid courses, books, tools, communities
### Certification Roadmap: entry, professional, and expert level with preparation material
### Career Progression & Salary: junior through senior expectations
### Monthly Milestones Checklist

Make this roadmap actionable, specific, and comprehensive, with real course names, concrete technologies, actual book titles, and measurable milestones, detailed enough to follow step by step to become job-ready in 12 months.`, role)
}

func projectsPrompt(role string) string {
	return fmt.Sprintf(`As a senior %[1]s and technical mentor, suggest 3 specific, detailed project ideas for someone learning to become a %[1]s.

For each project, provide:
1. Project name and a 2-3 sentence description
2. Technical requirements: specific technologies, frameworks, and tools
3. Core features: 5-7 essential features to implement
4. Advanced features: 3-4 optional stretch goals
5. Learning objectives: what skills the project teaches
6. Time estimate: realistic timeline for completion
7. Deployment strategy: how and where to host the project
8. Portfolio value: why this project will impress employers

Make the projects industry-relevant, scalable, portfolio-worthy, and built on modern, in-demand technologies. Focus on projects that demonstrate both technical skill and business understanding.`, role)
}

func resourcesPrompt(role string) string {
	return fmt.Sprintf(`As an expert %[1]s and career coach, provide a comprehensive list of specific learning resources for someone pursuing a %[1]s career.

Organize resources into these categories:
### Books (5-7 essential books with title, author, year, and skill level)
### Online Courses (8-10 courses with platform, instructor, duration, cost, and skills covered)
### Free Resources (10+ resources: YouTube channels, documentation, tutorials, open source projects worth studying)
### Certifications (5-7 with issuing organization, exam code, cost, prerequisites, and industry value)
### Tools & Software (complete development environment setup and essential tooling)
### Communities & Networking (forums, chat servers, professional associations, meetups)
### Industry Publications (blogs, newsletters, podcasts, conference talks)
### Practice Platforms (coding challenges, project-based learning, hackathons, open source)

Make sure all resources are current, specific, varied across learning styles and budgets, and actionable.`, role)
}
