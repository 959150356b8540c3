package validators

import "strings"

// completeProtocol is a document that satisfies every identity dimension:
// all six basic-information elements, all three prerequisite categories,
// full integration mapping, documented compliance standards, and all nine
// required sections.
const completeProtocol = `# Discovery Call Protocol

**Protocol ID**: 01
**Version**: 1.2.0
**Objective**: Qualify the client and scope the engagement.
**Owner**: Lead Consultant
**Estimated Duration**: 3 days

## 1. Purpose

Structured discovery call flow for new consulting engagements.

## 2. Prerequisites

- Required inputs: completed intake form, call recording consent
- Approvals: engagement sign-off from the account lead
- Environment: CRM access and call tooling installed

## 3. Workflow

Entry criteria: intake form received and triaged.

### Phase 1: Preparation

1. Review the intake form against scripts/discovery/prep_call.sh output
2. Draft the agenda
3. Decision point: if budget is unclear then schedule a follow-up

- [ ] Agenda drafted
- [ ] Stakeholders confirmed

### Phase 2: The Call

1. Run the call against the agenda
2. Capture notes per the template

- [ ] Notes captured
- [ ] Next steps agreed

### Phase 3: Debrief

1. Summarize findings
2. Log artifacts to the engagement folder

Exit criteria: summary sent and next protocol scheduled.

## 4. Deliverables

- Deliverable: discovery summary, owned by the Lead Consultant
- Deliverable: qualified opportunity record

Acceptance criteria: each item must be reviewed within 2 days.
Format: markdown, delivered as templates/discovery-summary.md.

## 5. Quality Gates

- Gate: summary completeness, threshold: 0.90, halt on fail
- Gate: client confirmation received, evidence in the manifest

Gates run in sequence; pass or fail is recorded per gate.

## 6. Integration

Upstream: Protocol 00 supplies the intake form.
Downstream: Protocol 02 consumes the discovery summary.

- Shared artifacts: intake form, discovery summary
- Context transfer: briefing document handed to the proposal owner
- Continuity owner: account lead

## 7. Compliance

Standards: ISO 9001 quality practices apply.
Every summary passes a peer review checkpoint before client sign-off.

## 8. Failure Recovery

Known failure mode: client no-show. Known failure mode: scope drift detected late.

- Roll back to the scheduling step and revert the opportunity stage
- Contingency: reschedule within 5 business days

Detection: calendar alert fires when the call is missed.
Recovery owner: on-call account manager.

## 9. References

See the [engagement playbook](docs/playbook.md) and the glossary of terms.
Version history is tracked in the changelog.
`

// withoutLine returns the fixture with the first line containing marker
// removed.
func withoutLine(doc, marker string) string {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines))
	removed := false
	for _, line := range lines {
		if !removed && strings.Contains(line, marker) {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
