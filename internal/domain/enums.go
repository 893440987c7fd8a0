package domain

type DeliverableStatus string

const (
	StatusIncomplete DeliverableStatus = "incomplete"
	StatusInProgress DeliverableStatus = "in_progress"
	StatusSubmitted  DeliverableStatus = "submitted"
	StatusGraded     DeliverableStatus = "graded"
)

// ValidDeliverableStatuses is the canonical set of accepted status strings.
var ValidDeliverableStatuses = map[string]bool{
	"incomplete": true, "in_progress": true, "submitted": true, "graded": true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendStable Trend = "stable"
	TrendDown   Trend = "down"
)

type TrackingStatus string

const (
	TrackOnTrack        TrackingStatus = "on-track"
	TrackSlightlyBehind TrackingStatus = "slightly-behind"
	TrackAtRisk         TrackingStatus = "at-risk"
)

type BlockType string

const (
	BlockClass       BlockType = "class"
	BlockLab         BlockType = "lab"
	BlockOfficeHours BlockType = "office-hours"
	BlockStudy       BlockType = "study-block"
)

// ValidBlockTypes is the canonical set of accepted schedule block type strings.
var ValidBlockTypes = map[string]bool{
	"class": true, "lab": true, "office-hours": true, "study-block": true,
}
