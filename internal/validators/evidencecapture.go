package validators

import "github.com/metalagman/protovet/internal/rubric"

// NewEvidenceCapture builds the evidence-capture validator: does the
// protocol say where its artifacts land and how they trace back.
//
// Dimension shapes: artifact_logging composite/1, traceability_links
// ratio/3, audit_trail composite/1, retention_policy composite/1,
// checksum_practice composite/1.
func NewEvidenceCapture() *Validator {
	return Must(New("evidence", []Dimension{
		{
			Name:   "artifact_logging",
			Weight: 0.25,
			Score: compositeScorer([]check{
				{"logging_destination", rubric.ArtifactLogging, "No artifact logging destination documented"},
			}),
		},
		{
			Name:   "traceability_links",
			Weight: 0.25,
			Score: ratioScorer([]check{
				{"traceability", rubric.TraceabilityLink, "No traceability statement"},
				{"markdown_links", rubric.MarkdownLink, "No cross-references to related documents"},
				{"protocol_refs", rubric.ProtocolRef, "No references to other protocols"},
			}),
		},
		{
			Name:   "audit_trail",
			Weight: 0.20,
			Score: compositeScorer([]check{
				{"audit_trail", rubric.AuditTrail, "No audit trail documented"},
			}),
		},
		{
			Name:   "retention_policy",
			Weight: 0.15,
			Score: compositeScorer([]check{
				{"retention", rubric.RetentionMention, "No artifact retention policy documented"},
			}),
		},
		{
			Name:   "checksum_practice",
			Weight: 0.15,
			Score: compositeScorer([]check{
				{"checksums", rubric.ChecksumPractice, "No checksum or hashing practice documented"},
			}),
		},
	}))
}
