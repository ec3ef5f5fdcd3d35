// Package enhance is the per-section AI enhancement gateway. With a chat
// model configured it asks the LLM to rewrite the section text; without one
// it serves a canned enhancement library so the editor works offline. Either
// way it only produces a suggestion and never touches the resume store: a
// failed or ignored enhancement leaves the resume exactly as it was.
package enhance

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/mkravets/resume-editor/pkg/llm"
)

// Section identifies which part of the resume is being enhanced.
type Section string

const (
	SectionPersonalInfo Section = "personal_info"
	SectionSummary      Section = "summary"
	SectionExperience   Section = "experience"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
)

// Service produces improved section text.
type Service struct {
	llm            llm.ChatModel
	maxPromptChars int
}

// NewService builds the enhancer. A nil model switches it to canned mode.
func NewService(model llm.ChatModel) *Service {
	return &Service{llm: model, maxPromptChars: 12_000}
}

// Enhance returns improved text for the given section. LLM failures are
// returned to the caller as-is; there is no retry and no fallback to canned
// content, so a configured-but-unreachable model surfaces as a gateway error.
func (s *Service) Enhance(ctx context.Context, section Section, content string) (string, error) {
	if s.llm == nil {
		return cannedEnhancement(section, content), nil
	}
	text := content
	if len(text) > s.maxPromptChars {
		text = text[:s.maxPromptChars]
	}
	system := "You are a professional resume writer. Rewrite the text you are given to be clearer and more impactful: " +
		"strong action verbs, quantified achievements where the source supports them, no invented facts. " +
		"Return only the rewritten text, no commentary."
	user := fmt.Sprintf("Resume section: %s\nText between markers:\n<<<\n%s\n>>>", section, text)
	answer, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("enhancement failed: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// cannedEnhancement mirrors the mock responses the editor shipped with before
// an LLM was wired in. Unknown sections get the generic wrapper.
func cannedEnhancement(section Section, content string) string {
	options, ok := canned[section]
	if !ok {
		return fmt.Sprintf("Enhanced version of: %s\n\nThis content has been optimized for professional impact "+
			"with improved clarity, stronger action verbs, and quantifiable achievements.", content)
	}
	return options[rand.Intn(len(options))]
}

var canned = map[Section][]string{
	SectionSummary: {
		"Results-driven professional with proven expertise in delivering high-impact solutions and driving organizational growth through strategic leadership and innovative problem-solving approaches.",
		"Dynamic and accomplished professional with a track record of excellence in cross-functional collaboration, project management, and delivering measurable business outcomes.",
		"Innovative and strategic professional with demonstrated success in leveraging cutting-edge technologies and best practices to drive operational efficiency and business transformation.",
	},
	SectionExperience: {
		"• Spearheaded the development and implementation of scalable solutions, resulting in 40% improvement in system performance and enhanced user experience\n• Led cross-functional teams of 8+ members to deliver critical projects on time and within budget, consistently exceeding stakeholder expectations\n• Architected and deployed robust infrastructure solutions that reduced operational costs by 25% while improving system reliability\n• Mentored junior team members and established best practices that improved code quality and development velocity by 30%",
		"• Designed and implemented comprehensive solutions that streamlined business processes and improved operational efficiency by 35%\n• Collaborated with stakeholders across multiple departments to gather requirements and deliver solutions that aligned with business objectives\n• Optimized system performance through strategic refactoring and implementation of industry best practices\n• Established monitoring and alerting systems that reduced incident response time by 50%",
	},
	SectionSkills: {
		"Technical Skills: Advanced proficiency in modern development frameworks and cloud technologies with expertise in scalable architecture design\nLeadership Skills: Proven ability to lead cross-functional teams and drive strategic initiatives to successful completion\nProblem-Solving: Strong analytical skills with experience in identifying bottlenecks and implementing effective solutions",
		"Core Competencies: Full-stack development, system architecture, database optimization, and agile methodologies\nSoft Skills: Excellent communication, team collaboration, project management, and stakeholder engagement\nTechnical Expertise: Cloud platforms, DevOps practices, automated testing, and continuous integration/deployment",
	},
	SectionEducation: {
		"Distinguished academic achievement with focus on cutting-edge technologies and practical application of theoretical concepts in real-world scenarios.",
		"Comprehensive educational foundation with emphasis on problem-solving methodologies and innovative approaches to complex technical challenges.",
	},
	SectionPersonalInfo: {
		"Professional contact information optimized for networking and career advancement opportunities.",
		"Complete professional profile with verified contact details and established online presence.",
	},
}
