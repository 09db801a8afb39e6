package generator

import "github.com/futig/rfp-backend/internal/entity"

const (
	timelineConfidence = 0.8
	teamConfidence     = 0.9
	riskConfidence     = 0.7

	teamExcerptLength = 400
)

var teamKeywords = []string{"team", "resource", "expertise"}

// standardSections are appended to every proposal regardless of the RFP content.
// They address no RFP questions and so never count toward coverage.
func (g *Generator) standardSections() []entity.ProposalSection {
	return []entity.ProposalSection{
		{
			ID:            "timeline",
			Title:         "Project Timeline & Milestones",
			Content:       timelineContent,
			RFPQuestions:  []string{},
			KnowledgeUsed: []string{},
			Confidence:    timelineConfidence,
		},
		g.teamSection(),
		{
			ID:            "risk-management",
			Title:         "Risk Management & Mitigation",
			Content:       riskContent,
			RFPQuestions:  []string{},
			KnowledgeUsed: []string{},
			Confidence:    riskConfidence,
		},
	}
}

func (g *Generator) teamSection() entity.ProposalSection {
	qualifications := "Our team members are certified professionals with relevant industry experience and proven track records in similar projects."
	used := []string{}
	if item, ok := firstMatching(g.knowledge, teamKeywords); ok {
		qualifications = excerpt(item.Content, teamExcerptLength)
		used = append(used, item.Title)
	}

	return entity.ProposalSection{
		ID:            "team",
		Title:         "Project Team & Resources",
		Content:       teamHead + qualifications + "\n\n" + teamTail,
		RFPQuestions:  []string{},
		KnowledgeUsed: used,
		Confidence:    teamConfidence,
	}
}

const timelineContent = `# Project Timeline & Milestones

## Project Phases

### Phase 1: Discovery & Planning (Weeks 1-2)
- Detailed requirements analysis and validation
- Technical architecture design and review
- Project plan finalization and team allocation
- Risk assessment and mitigation planning

**Deliverables:**
- Requirements specification document
- Technical architecture document
- Detailed project plan with milestones
- Risk management plan

### Phase 2: Design & Prototyping (Weeks 3-4)
- UI/UX design and user experience planning
- System design and database architecture
- API design and integration planning
- Prototype development and validation

**Deliverables:**
- UI/UX designs and style guide
- System design documentation
- API specifications
- Working prototype

### Phase 3: Development & Implementation (Weeks 5-12)
- Core system development
- Feature implementation and testing
- Integration with external systems
- Performance optimization

**Deliverables:**
- Core application functionality
- Integrated system components
- Test results and quality reports
- Performance benchmarks

### Phase 4: Testing & Quality Assurance (Weeks 13-14)
- Comprehensive system testing
- User acceptance testing
- Performance and security testing
- Bug fixes and optimization

**Deliverables:**
- Test execution reports
- UAT sign-off
- Performance test results
- Security assessment report

### Phase 5: Deployment & Go-Live (Weeks 15-16)
- Production environment setup
- Data migration and system deployment
- User training and documentation
- Go-live support and monitoring

**Deliverables:**
- Production-ready system
- User training materials
- System documentation
- Go-live support plan

## Key Milestones
- Week 2: Requirements and architecture approval
- Week 4: Design approval and prototype sign-off
- Week 8: Core functionality demonstration
- Week 12: System integration complete
- Week 14: UAT completion and sign-off
- Week 16: Production go-live

## Timeline Flexibility
We understand that project timelines may need adjustment based on changing requirements or priorities. Our agile approach allows for flexibility while maintaining quality and delivery commitments.`

const teamHead = `# Project Team & Resources

## Team Structure

### Project Management
- **Project Manager**: Dedicated PM with 8+ years experience
- **Technical Lead**: Senior architect overseeing technical decisions
- **Quality Assurance Lead**: Ensuring deliverable quality and standards

### Development Team
- **Senior Full-Stack Developers**: 2-3 developers with relevant technology expertise
- **Frontend Specialists**: UI/UX focused developers for optimal user experience
- **Backend Developers**: API and database specialists
- **DevOps Engineer**: Infrastructure and deployment specialist

### Specialized Roles
- **Business Analyst**: Requirements gathering and stakeholder communication
- **Security Specialist**: Security implementation and compliance
- **Testing Engineers**: Automated and manual testing specialists

## Team Qualifications
`

const teamTail = `## Resource Allocation
- Full-time dedicated team for project duration
- Part-time specialists available as needed
- 24/7 support during critical phases
- Backup resources for continuity planning

## Communication Structure
- Daily standups for development team coordination
- Weekly progress reviews with stakeholders
- Bi-weekly steering committee meetings
- Monthly executive briefings

## Team Availability
Our team is committed to your project success with:
- Dedicated resources for the project duration
- Flexible working arrangements to meet project needs
- Overlap with client time zones for effective communication
- Escalation procedures for urgent issues`

const riskContent = `# Risk Management & Mitigation

## Risk Assessment Framework

### Technical Risks
**Risk**: Technology integration challenges
- **Probability**: Medium
- **Impact**: Medium
- **Mitigation**: Proof of concept development, early integration testing

**Risk**: Performance and scalability issues
- **Probability**: Low
- **Impact**: High
- **Mitigation**: Performance testing throughout development, scalable architecture design

**Risk**: Security vulnerabilities
- **Probability**: Low
- **Impact**: High
- **Mitigation**: Security-first development approach, regular security audits

### Project Risks
**Risk**: Scope creep and requirement changes
- **Probability**: Medium
- **Impact**: Medium
- **Mitigation**: Clear change management process, regular stakeholder communication

**Risk**: Resource availability issues
- **Probability**: Low
- **Impact**: Medium
- **Mitigation**: Backup resource planning, cross-training team members

**Risk**: Timeline delays
- **Probability**: Medium
- **Impact**: Medium
- **Mitigation**: Buffer time in schedule, agile delivery approach

### Business Risks
**Risk**: Stakeholder alignment issues
- **Probability**: Low
- **Impact**: High
- **Mitigation**: Regular communication, clear decision-making processes

**Risk**: Budget constraints
- **Probability**: Low
- **Impact**: High
- **Mitigation**: Transparent cost tracking, flexible scope management

## Risk Monitoring
- Weekly risk assessment reviews
- Risk register maintenance and updates
- Proactive communication of potential issues
- Escalation procedures for high-impact risks

## Contingency Planning
- Alternative technical approaches identified
- Backup resource allocation plans
- Emergency response procedures
- Business continuity planning

## Success Factors
- Clear communication channels
- Regular progress monitoring
- Proactive issue identification
- Collaborative problem-solving approach`
