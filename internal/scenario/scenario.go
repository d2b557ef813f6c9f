// Package scenario defines the strongly-typed record model for one
// housing-conflict scenario, mirroring the dataset schema with explicit
// optional fields. The map-based engine in internal/validation stays
// authoritative for the report contract; this model backs strict typed
// decoding for tooling that wants a struct.
package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// UrgencyLevel grades how quickly a scenario must be acted on.
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "Low"
	UrgencyMedium    UrgencyLevel = "Medium"
	UrgencyHigh      UrgencyLevel = "High"
	UrgencyCritical  UrgencyLevel = "Critical"
	UrgencyEmergency UrgencyLevel = "Emergency"
)

// VulnerabilityContext describes the tenant's vulnerability profile.
type VulnerabilityContext struct {
	Primary        string   `json:"primary" validate:"required"`
	Intersectional []string `json:"intersectional,omitempty"`
	TraumaHistory  string   `json:"trauma_history,omitempty"`
}

// LegalBasis lists the cited instruments per jurisdiction level.
type LegalBasis struct {
	Federal []string `json:"federal"`
	State   []string `json:"state,omitempty"`
	Local   []string `json:"local,omitempty"`
}

// GoldenRatioStructure is the prescribed response structure: emotional
// validation first, then concrete action, accountability, proof, and a
// realistic boundary.
type GoldenRatioStructure struct {
	EmotionalValidation     string   `json:"emotional_validation" validate:"required"`
	ConcreteAction          string   `json:"concrete_action" validate:"required"`
	AccountabilityMechanism string   `json:"accountability_mechanism,omitempty"`
	ProofStatement          string   `json:"proof_statement,omitempty"`
	RealisticBoundary       string   `json:"realistic_boundary,omitempty"`
	ClosingStatement        string   `json:"closing_statement,omitempty"`
	ClosureVariants         []string `json:"closure_variants,omitempty"`
}

// Timeline stages the implementation response.
type Timeline struct {
	Immediate string `json:"immediate,omitempty"`
	ShortTerm string `json:"short_term,omitempty"`
	LongTerm  string `json:"long_term,omitempty"`
}

// CostParameters captures the expected cost envelope.
type CostParameters struct {
	EstimatedCost            string   `json:"estimated_cost,omitempty"`
	FundingSources           []string `json:"funding_sources,omitempty"`
	CostMitigationStrategies []string `json:"cost_mitigation_strategies,omitempty"`
}

// StaffTraining lists required training for implementing staff.
type StaffTraining struct {
	RequiredTopics        []string `json:"required_topics,omitempty"`
	TrainingFormat        []string `json:"training_format,omitempty"`
	CertificationRequired bool     `json:"certification_required,omitempty"`
}

// ImplementationRequirements bundles timeline, cost and training needs.
type ImplementationRequirements struct {
	Timeline            *Timeline       `json:"timeline,omitempty"`
	CostParameters      *CostParameters `json:"cost_parameters,omitempty"`
	DocumentationNeeded []string        `json:"documentation_needed,omitempty"`
	StaffTraining       *StaffTraining  `json:"staff_training,omitempty"`
}

// ConflictResolution holds objection handling and escalation content.
type ConflictResolution struct {
	CommonObjections []string          `json:"common_objections,omitempty"`
	ResponseScripts  map[string]string `json:"response_scripts,omitempty"`
	EscalationPath   []string          `json:"escalation_path,omitempty"`
	DenialGrounds    []string          `json:"denial_grounds,omitempty"`
	AppealProcess    string            `json:"appeal_process,omitempty"`
}

// ComplianceMetrics defines how implementation success is measured.
type ComplianceMetrics struct {
	ImplementationTimeline string            `json:"implementation_timeline,omitempty"`
	InspectionRequirements string            `json:"inspection_requirements,omitempty"`
	FollowUpSchedule       string            `json:"follow_up_schedule,omitempty"`
	SuccessMetrics         map[string]string `json:"success_metrics,omitempty"`
}

// TraumaInformedCare lists care constraints for tenant communication.
type TraumaInformedCare struct {
	TriggersToAvoid      []string `json:"triggers_to_avoid,omitempty"`
	CommunicationStyle   []string `json:"communication_style,omitempty"`
	SafetyConsiderations []string `json:"safety_considerations,omitempty"`
}

// AccessibilityFeatures lists accommodations by channel.
type AccessibilityFeatures struct {
	Communication []string `json:"communication,omitempty"`
	Physical      []string `json:"physical,omitempty"`
	Technological []string `json:"technological,omitempty"`
}

// TenantRights flags the rights asserted by the scenario.
type TenantRights struct {
	RightToModify            bool `json:"right_to_modify"`
	RightToAccommodation     bool `json:"right_to_accommodation"`
	RightToPrivacy           bool `json:"right_to_privacy"`
	RightToNondiscrimination bool `json:"right_to_nondiscrimination"`
}

// Metadata carries record provenance.
type Metadata struct {
	CreatedAt        string `json:"created_at" validate:"required"`
	LastUpdated      string `json:"last_updated" validate:"required"`
	ValidationStatus string `json:"validation_status" validate:"required"`
}

// Message is one turn of a scripted conversation.
type Message struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Scenario is one dataset record: a housing-conflict case with legal,
// emotional, and procedural content.
type Scenario struct {
	ScenarioID                 string                      `json:"scenario_id" validate:"required"`
	Title                      string                      `json:"title" validate:"required"`
	Description                string                      `json:"description" validate:"required"`
	Vulnerabilities            []string                    `json:"vulnerabilities,omitempty"`
	VulnerabilityContext       *VulnerabilityContext       `json:"vulnerability_context,omitempty"`
	UrgencyLevel               UrgencyLevel                `json:"urgency_level,omitempty" validate:"omitempty,oneof=Low Medium High Critical Emergency"`
	LegalBasis                 *LegalBasis                 `json:"legal_basis,omitempty"`
	GoldenRatioStructure       *GoldenRatioStructure       `json:"golden_ratio_structure,omitempty"`
	ImplementationRequirements *ImplementationRequirements `json:"implementation_requirements,omitempty"`
	ConflictResolution         *ConflictResolution         `json:"conflict_resolution,omitempty"`
	ComplianceMetrics          *ComplianceMetrics          `json:"compliance_metrics,omitempty"`
	TraumaInformedCare         *TraumaInformedCare         `json:"trauma_informed_care,omitempty"`
	AccessibilityFeatures      *AccessibilityFeatures      `json:"accessibility_features,omitempty"`
	TenantRights               *TenantRights               `json:"tenant_rights,omitempty"`
	Metadata                   *Metadata                   `json:"metadata,omitempty"`
	Messages                   []Message                   `json:"messages,omitempty"`
	Tags                       []string                    `json:"tags,omitempty"`
	Version                    string                      `json:"version,omitempty"`
}

var validate = validator.New()

// Decode strictly parses one scenario record from JSON and validates the
// struct tags. Unknown fields are rejected so typos surface instead of
// silently dropping data.
func Decode(data []byte) (*Scenario, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the struct-level constraints.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("scenario %s failed validation: %w", s.ScenarioID, err)
	}
	return nil
}
