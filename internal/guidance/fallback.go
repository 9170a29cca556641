package guidance

import "fmt"

// Builtin content shown when no generation API is configured or a call
// fails. Parameterized by role so every request still gets a usable answer.

func fallbackFor(role string, kind Kind) string {
	switch kind {
	case KindProjects:
		return fallbackProjects(role)
	case KindResources:
		return fallbackResources(role)
	default:
		return fallbackRoadmap(role)
	}
}

func fallbackRoadmap(role string) string {
	return fmt.Sprintf(`## Learning Roadmap for %[1]s

### Phase 1: Foundation (Months 1-3)
Learn the core concepts, languages, and tools of the %[1]s role through
official documentation, introductory courses, and small practice exercises.

### Phase 2: Intermediate (Months 4-8)
Build real projects with the frameworks and workflows used in industry.
Join developer communities and start reading production codebases.

### Phase 3: Advanced (Months 9-12)
Focus on architecture, best practices, and one or two specialization areas.
Complete a capstone project that could pass a professional code review.

### Phase 4: Professional Development (Months 12+)
Prepare a portfolio, pursue an industry certification, and practice
interviews while keeping up with current trends.

*For an AI-generated, personalized roadmap with specific courses, books,
and certifications, configure an API key.*`, role)
}

func fallbackProjects(role string) string {
	return fmt.Sprintf(`## Project Ideas for %[1]s

### Project 1: Industry-Standard Application
Build a production-ready application that demonstrates core %[1]s skills
with proper architecture, testing, and deployment.

### Project 2: API Integration Project
Create a project that integrates with multiple external APIs, handles data
processing, and provides a user-friendly interface.

### Project 3: Full-Stack Solution
Develop a complete solution that showcases both frontend and backend skills
relevant to %[1]s responsibilities.

*For detailed, personalized project ideas with specific requirements and
technologies, configure an API key.*`, role)
}

func fallbackResources(role string) string {
	return fmt.Sprintf(`## Learning Resources for %[1]s

### Essential Learning Paths
- Industry-standard documentation and official guides
- Reputable online learning platforms (Coursera, Udemy, Pluralsight)
- Open source projects and GitHub repositories
- Professional community forums and discussion groups

### Skill Development
- Hands-on practice through coding challenges
- Real-world project development
- Industry certification preparation
- Continuous learning through tech blogs and publications

*For comprehensive, specific resource recommendations with exact course
names, books, and links, configure an API key.*`, role)
}
