package generator

import (
	"github.com/futig/rfp-backend/internal/entity"
)

const (
	answerExcerptLength  = 300
	generalExcerptLength = 200
)

// answer renders the response to one question. With no backing knowledge it falls back to boilerplate.
func answer(q entity.RFPQuestion, knowledge []entity.KnowledgeBaseItem) string {
	switch q.Type {
	case entity.QuestionTypeTechnical:
		return technicalAnswer(knowledge)
	case entity.QuestionTypeCommercial:
		return commercialAnswer(knowledge)
	case entity.QuestionTypeExperience:
		return experienceAnswer(knowledge)
	case entity.QuestionTypeCompliance:
		return complianceAnswer(knowledge)
	default:
		return generalAnswer(knowledge)
	}
}

func preferType(knowledge []entity.KnowledgeBaseItem, kt entity.KnowledgeType) entity.KnowledgeBaseItem {
	for _, item := range knowledge {
		if item.Type == kt {
			return item
		}
	}
	return knowledge[0]
}

func ofType(knowledge []entity.KnowledgeBaseItem, kt entity.KnowledgeType) []entity.KnowledgeBaseItem {
	var items []entity.KnowledgeBaseItem
	for _, item := range knowledge {
		if item.Type == kt {
			items = append(items, item)
		}
	}
	return items
}

func technicalAnswer(knowledge []entity.KnowledgeBaseItem) string {
	if len(knowledge) == 0 {
		return technicalFallback
	}
	item := preferType(knowledge, entity.KnowledgeTypeTechnicalSpec)
	return "Our technical approach leverages industry best practices and proven technologies. " +
		excerpt(item.Content, answerExcerptLength) + "\n\n" + technicalClaims
}

func commercialAnswer(knowledge []entity.KnowledgeBaseItem) string {
	if len(knowledge) == 0 {
		return commercialFallback
	}
	item := preferType(knowledge, entity.KnowledgeTypePricing)
	return "Our commercial approach is transparent and competitive. " +
		excerpt(item.Content, answerExcerptLength) + "\n\n" + commercialClaims
}

func experienceAnswer(knowledge []entity.KnowledgeBaseItem) string {
	caseStudies := ofType(knowledge, entity.KnowledgeTypeCaseStudy)
	if len(caseStudies) == 0 {
		return experienceFallback
	}
	return "Our team has extensive experience in similar projects. " +
		excerpt(caseStudies[0].Content, answerExcerptLength) + "\n\n" + experienceClaims
}

func complianceAnswer(knowledge []entity.KnowledgeBaseItem) string {
	if len(knowledge) == 0 {
		return complianceFallback
	}
	return "We maintain strict compliance with industry standards and regulations. " +
		excerpt(knowledge[0].Content, answerExcerptLength) + "\n\n" + complianceClaims
}

func generalAnswer(knowledge []entity.KnowledgeBaseItem) string {
	if len(knowledge) == 0 {
		return generalFallback
	}
	return excerpt(knowledge[0].Content, generalExcerptLength) + "\n\n" + generalClaims
}

const technicalClaims = `We ensure scalability, security, and performance through:
- Modern architecture patterns and frameworks
- Comprehensive testing and quality assurance
- Continuous integration and deployment practices
- Performance monitoring and optimization`

const technicalFallback = `Our technical team brings extensive experience in modern software development practices. We follow industry standards and best practices to ensure:

- Scalable and maintainable architecture
- Robust security implementation
- High-performance solutions
- Comprehensive documentation and testing

We will provide detailed technical specifications and architecture diagrams during the project planning phase.`

const commercialClaims = `We offer flexible pricing models including:
- Fixed-price project delivery
- Time and materials engagement
- Hybrid pricing structures
- Flexible payment terms`

const commercialFallback = `We provide transparent and competitive pricing with flexible payment terms. Our commercial approach includes:

- Detailed cost breakdown and justification
- Flexible payment schedules aligned with project milestones
- Competitive rates with no hidden costs
- Value-based pricing that delivers ROI

We will provide a comprehensive commercial proposal with detailed pricing upon request.`

const experienceClaims = `Key highlights of our experience:
- Successfully delivered 200+ projects
- 95% client satisfaction rate
- Average project delivery 20% faster than industry standards
- Proven track record across multiple industries`

const experienceFallback = `Our team brings extensive experience and proven expertise:

- 8+ years of software development experience
- Successfully delivered 200+ projects across various industries
- 95% client satisfaction rate with long-term partnerships
- Certified professionals with relevant industry experience
- Proven methodology and best practices

We can provide detailed case studies and client references upon request.`

const complianceClaims = `Our compliance framework includes:
- ISO 27001 certified for information security management
- GDPR compliant data handling and privacy practices
- Regular security audits and compliance assessments
- Documented policies and procedures for all processes
- Staff training on compliance requirements`

const complianceFallback = `We maintain strict compliance with industry standards and regulations:

- ISO 27001 certified for information security management
- GDPR compliant data handling and privacy practices
- Regular security audits and compliance assessments
- Documented policies and procedures for all processes
- Staff training on compliance requirements

We will ensure all project deliverables meet your compliance requirements and provide necessary documentation and certifications.`

const generalClaims = `We are committed to delivering exceptional results that meet and exceed your expectations. Our approach includes:
- Detailed project planning and management
- Regular communication and progress updates
- Quality assurance at every stage
- Comprehensive documentation and training`

const generalFallback = `We understand the importance of this requirement and are committed to providing a comprehensive solution. Our approach includes:

- Thorough analysis and planning
- Best-in-class implementation practices
- Regular progress monitoring and reporting
- Dedicated support throughout the project lifecycle

We will provide detailed specifications and implementation plans during the project planning phase.`
