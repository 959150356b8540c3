package rubric

import "regexp"

// PatternVersion identifies the pattern library release recorded in
// evidence manifests. Bump on any pattern change so stored scores can be
// traced back to the rules that produced them.
const PatternVersion = "1.0.0"

// Document identity markers.
var (
	TitleHeading     = regexp.MustCompile(`(?m)^#\s+\S`)
	ProtocolIDField  = regexp.MustCompile(`(?im)^\*{0,2}protocol\s*id\*{0,2}\s*:\s*\d{2}\b`)
	SemanticVersion  = regexp.MustCompile(`(?im)^\*{0,2}version\*{0,2}\s*:\s*v?\d+\.\d+\.\d+\b`)
	ObjectiveField   = regexp.MustCompile(`(?im)^\*{0,2}objective\*{0,2}\s*:\s*\S`)
	OwnerField       = regexp.MustCompile(`(?im)^\*{0,2}owner\*{0,2}\s*:\s*\S`)
	DurationField    = regexp.MustCompile(`(?im)^\*{0,2}(?:estimated\s+)?duration\*{0,2}\s*:\s*\S`)
	ProtocolRef      = regexp.MustCompile(`(?i)\bprotocol\s+(\d{2})\b`)
	VersionHistoryRe = regexp.MustCompile(`(?i)\b(?:version\s+history|changelog|revision\s+log)\b`)
)

// Prerequisite category markers.
var (
	RequiredInputs     = regexp.MustCompile(`(?i)\binputs?\b`)
	RequiredApprovals  = regexp.MustCompile(`(?i)\bapprovals?\b|\bsign-?off\b`)
	EnvironmentTooling = regexp.MustCompile(`(?i)\benvironment\b|\btool(?:s|ing)\b`)
)

// Workflow structure markers.
var (
	PhaseHeading  = regexp.MustCompile(`(?im)^#{2,4}\s+(?:\d+\.\s+)?phase\b`)
	NumberedStep  = regexp.MustCompile(`(?m)^\s*\d+\.\s+\S`)
	EntryCriteria = regexp.MustCompile(`(?i)\bentry\s+criteri(?:a|on)\b`)
	ExitCriteria  = regexp.MustCompile(`(?i)\bexit\s+criteri(?:a|on)\b`)
	DecisionPoint = regexp.MustCompile(`(?i)\b(?:decision\s+point|if\s+.{0,40}\bthen\b|go/no-go)\b`)
	ChecklistItem = regexp.MustCompile(`(?m)^\s*[-*]\s+\[[ xX]\]\s+`)
	BulletItem    = regexp.MustCompile(`(?m)^\s*[-*]\s+\S`)
	FirstStep     = regexp.MustCompile(`(?m)^\s*1\.\s+\S`)
	FencedCode    = regexp.MustCompile("(?m)^```")
)

// Script integration markers.
var (
	ScriptPath       = regexp.MustCompile(`(?:scripts|bin|tools)/[\w./-]+\.(?:sh|py|go|js)\b`)
	ScriptInvocation = regexp.MustCompile("(?m)^\\s*(?:\\$\\s+)?(?:bash|sh|python3?|go run)\\s+\\S+|```(?:bash|sh|shell)")
	FallbackGuide    = regexp.MustCompile(`(?i)\b(?:fallback|manual(?:ly)?\s+(?:run|step|process)|if\s+the\s+script\s+fails)\b`)
)

// Deliverable markers.
var (
	DeliverableItem    = regexp.MustCompile(`(?im)^\s*[-*]\s+(?:\*{2})?(?:deliverable|output|artifact)\b|^#{2,4}\s+deliverable`)
	AcceptanceCriteria = regexp.MustCompile(`(?i)\bacceptance\s+criteri(?:a|on)\b`)
	TemplateRef        = regexp.MustCompile(`(?i)\btemplate\b.{0,60}\.(?:md|docx?|xlsx?)\b|\btemplates?/[\w.-]+`)
	FormatSpec         = regexp.MustCompile(`(?i)\bformat\s*:\s*\S|\bdelivered\s+as\b`)
	OwnershipTag       = regexp.MustCompile(`(?i)\b(?:owned\s+by|responsible|accountable|owner\s*:)\b`)
)

// Quality-gate markers.
var (
	GateDefinition  = regexp.MustCompile(`(?im)^#{2,4}\s+(?:\d+\.\s+)?gate\b|^\s*[-*]\s+\*{0,2}gate\b`)
	ThresholdDecl   = regexp.MustCompile(`(?i)\bthreshold\s*:?\s*\d+(?:\.\d+)?%?`)
	HaltPolicy      = regexp.MustCompile(`(?i)\b(?:halt|stop|block)\s+on\s+fail(?:ure)?\b|\bhalt_on_fail\b`)
	EvidenceRequire = regexp.MustCompile(`(?i)\bevidence\b|\bproof\s+of\b`)
	GateOrdering    = regexp.MustCompile(`(?i)\b(?:gate\s+order|sequence|before\s+gate|after\s+gate)\b`)
)

// Communication markers.
var (
	TouchpointItem    = regexp.MustCompile(`(?i)\b(?:touchpoint|check-?in|kickoff|review\s+call|standup)\b`)
	ToneGuidance      = regexp.MustCompile(`(?i)\btone\b|\bvoice\b|\bregister\b`)
	EscalationPath    = regexp.MustCompile(`(?i)\bescalat(?:e|ion)\b`)
	UpdateCadence     = regexp.MustCompile(`(?i)\b(?:daily|weekly|bi-?weekly|cadence|every\s+\d+\s+days?)\b`)
	StakeholderEntry  = regexp.MustCompile(`(?im)^\s*[-*]\s+.*\b(?:client|sponsor|stakeholder|lead|reviewer)\b|^\|.*\b(?:client|sponsor|stakeholder)\b`)
	StakeholderMatrix = regexp.MustCompile(`(?i)\bstakeholders?\b`)
)

// Evidence-capture markers.
var (
	ArtifactLogging   = regexp.MustCompile(`(?i)\b(?:log(?:ged)?\s+(?:to|in)|record(?:ed)?\s+in|stored\s+(?:in|under))\b`)
	TraceabilityLink  = regexp.MustCompile(`(?i)\btrace(?:ability|able)?\b|\blinks?\s+back\s+to\b`)
	AuditTrail        = regexp.MustCompile(`(?i)\baudit\s+trail\b|\baudit\s+log\b`)
	RetentionMention  = regexp.MustCompile(`(?i)\bretention\b|\bkeep\s+for\b|\bretain(?:ed)?\b`)
	ChecksumPractice  = regexp.MustCompile(`(?i)\bchecksum\b|\bsha-?256\b|\bhash\b`)
	ManifestReference = regexp.MustCompile(`(?i)\bmanifest\b`)
)

// Failure-recovery markers.
var (
	FailureMode     = regexp.MustCompile(`(?i)\b(?:failure\s+mode|known\s+failure|risk)\b`)
	RollbackStep    = regexp.MustCompile(`(?i)\broll\s*back\b|\brevert\b|\brestore\b`)
	ContingencyPlan = regexp.MustCompile(`(?i)\bcontingenc(?:y|ies)\b|\bplan\s+b\b|\bworkaround\b`)
	DetectionSignal = regexp.MustCompile(`(?i)\b(?:detect(?:ion|ed)?|symptom|signal|alert)\b`)
	RecoveryOwner   = regexp.MustCompile(`(?i)\b(?:recovery\s+owner|escalation\s+owner|on-?call)\b`)
)

// Handoff markers.
var (
	UpstreamMention   = regexp.MustCompile(`(?i)\bupstream\b|\bprevious\s+protocol\b|\breceived?\s+from\b`)
	DownstreamMention = regexp.MustCompile(`(?i)\bdownstream\b|\bnext\s+protocol\b|\bhand(?:ed)?\s*(?:off|over)\s+to\b`)
	SharedArtifact    = regexp.MustCompile(`(?i)\bartifacts?\b`)
	ContextTransfer   = regexp.MustCompile(`(?i)\bcontext\s+(?:transfer|document|summary)\b|\bbriefing\b`)
	ContinuityOwner   = regexp.MustCompile(`(?i)\bcontinuity\b|\bhand-?off\s+owner\b`)
)

// Compliance markers.
var (
	StandardsMention = regexp.MustCompile(`(?i)\bstandards?\b`)
	NamedStandard    = regexp.MustCompile(`(?i)\b(?:ISO\s*\d{4,5}|SOC\s*2|GDPR|HIPAA|WCAG|PCI(?:-DSS)?)\b`)
	ReviewCheckpoint = regexp.MustCompile(`(?i)\breview\b`)
	SignoffRequire   = regexp.MustCompile(`(?i)\bsign-?off\b|\bapproval\s+required\b`)
)

// Shared prose markers.
var (
	MeasurableTerm   = regexp.MustCompile(`(?i)\b(?:must|shall|at least|no more than|within\s+\d+)\b|\d+%`)
	RoleMention      = regexp.MustCompile(`(?i)\b(?:consultant|client|lead|reviewer|owner|account\s+manager)\b`)
	PassFailLanguage = regexp.MustCompile(`(?i)\b(?:pass(?:es|ing)?|fail(?:s|ing|ure)?)\b`)
	GlossaryMention  = regexp.MustCompile(`(?i)\bglossary\b|\bdefinitions?\b`)
	GateMention      = regexp.MustCompile(`(?i)\bgate\b`)
)

// Markdown hygiene markers.
var (
	MarkdownLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	BareURL      = regexp.MustCompile(`(?m)\bhttps?://\S+`)
	TableRow     = regexp.MustCompile(`(?m)^\|.+\|\s*$`)
)
