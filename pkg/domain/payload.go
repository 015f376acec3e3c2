package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Payload is the typed form of a node's Data object. The set of
// implementations is sealed: exactly one per NodeType. Consumers obtain a
// Payload via DecodePayload and dispatch on the concrete type.
type Payload interface {
	nodeType() NodeType
}

// GreetingData opens the conversation.
type GreetingData struct {
	Message string `json:"message" mapstructure:"message"`
}

// QuestionData asks a qualifying question and stores the answer.
type QuestionData struct {
	Question string `json:"question" mapstructure:"question"`
	// SaveAs is the context variable the answer is captured into.
	SaveAs string `json:"saveAs" mapstructure:"saveAs"`
}

// ConsumptionCaptureData collects the monthly energy spend.
type ConsumptionCaptureData struct {
	Prompt string `json:"prompt" mapstructure:"prompt"`
	// Unit is "kwh" or "brl".
	Unit   string `json:"unit" mapstructure:"unit"`
	SaveAs string `json:"saveAs" mapstructure:"saveAs"`
}

// BillPhotoData requests a photo of the energy bill.
type BillPhotoData struct {
	Prompt string `json:"prompt" mapstructure:"prompt"`
	// Required blocks progress until a photo arrives.
	Required bool `json:"required" mapstructure:"required"`
}

// RoofPhotoData requests a photo of the roof.
type RoofPhotoData struct {
	Prompt   string `json:"prompt" mapstructure:"prompt"`
	Required bool   `json:"required" mapstructure:"required"`
}

// InstallationTypeData asks where the system will be installed.
type InstallationTypeData struct {
	Prompt  string   `json:"prompt" mapstructure:"prompt"`
	Options []string `json:"options" mapstructure:"options"`
	SaveAs  string   `json:"saveAs" mapstructure:"saveAs"`
}

// PaymentMethodData asks for the preferred payment method.
type PaymentMethodData struct {
	Prompt  string   `json:"prompt" mapstructure:"prompt"`
	Options []string `json:"options" mapstructure:"options"`
	SaveAs  string   `json:"saveAs" mapstructure:"saveAs"`
}

// ConditionData branches on a captured variable. The node exposes the
// "true" and "false" source handles.
type ConditionData struct {
	Variable string `json:"variable" mapstructure:"variable"`
	// Operator is one of "eq", "neq", "gt", "gte", "lt", "lte", "contains".
	Operator string `json:"operator" mapstructure:"operator"`
	Value    string `json:"value" mapstructure:"value"`
}

// ProposalData generates and sends the solar proposal.
type ProposalData struct {
	Message string `json:"message" mapstructure:"message"`
	// IncludeFinancing adds financing simulations to the document.
	IncludeFinancing bool `json:"includeFinancing" mapstructure:"includeFinancing"`
}

// SiteVisitData offers to schedule a technical visit.
type SiteVisitData struct {
	Message string `json:"message" mapstructure:"message"`
}

// FollowUpData re-engages a silent lead.
type FollowUpData struct {
	Message string `json:"message" mapstructure:"message"`
	// DelayHours overrides the global cadence for this node when > 0.
	DelayHours int `json:"delayHours" mapstructure:"delayHours"`
}

// HandoffData transfers the conversation to a human seller.
type HandoffData struct {
	Message string `json:"message" mapstructure:"message"`
	// NotifySeller pings the assigned seller in the dashboard.
	NotifySeller bool `json:"notifySeller" mapstructure:"notifySeller"`
}

// MessageData sends a plain message and moves on.
type MessageData struct {
	Message string `json:"message" mapstructure:"message"`
}

func (GreetingData) nodeType() NodeType           { return NodeGreeting }
func (QuestionData) nodeType() NodeType           { return NodeQuestion }
func (ConsumptionCaptureData) nodeType() NodeType { return NodeConsumptionCapture }
func (BillPhotoData) nodeType() NodeType          { return NodeBillPhoto }
func (RoofPhotoData) nodeType() NodeType          { return NodeRoofPhoto }
func (InstallationTypeData) nodeType() NodeType   { return NodeInstallationType }
func (PaymentMethodData) nodeType() NodeType      { return NodePaymentMethod }
func (ConditionData) nodeType() NodeType          { return NodeCondition }
func (ProposalData) nodeType() NodeType           { return NodeProposal }
func (SiteVisitData) nodeType() NodeType          { return NodeSiteVisit }
func (FollowUpData) nodeType() NodeType           { return NodeFollowUp }
func (HandoffData) nodeType() NodeType            { return NodeHandoff }
func (MessageData) nodeType() NodeType            { return NodeMessage }

// DecodePayload converts a node's raw Data object into its typed Payload.
// Unknown NodeType values are rejected; unknown keys inside the map are
// ignored so older documents keep loading after a payload gains fields.
func DecodePayload(t NodeType, data map[string]any) (Payload, error) {
	var target Payload
	switch t {
	case NodeGreeting:
		target = &GreetingData{}
	case NodeQuestion:
		target = &QuestionData{}
	case NodeConsumptionCapture:
		target = &ConsumptionCaptureData{}
	case NodeBillPhoto:
		target = &BillPhotoData{}
	case NodeRoofPhoto:
		target = &RoofPhotoData{}
	case NodeInstallationType:
		target = &InstallationTypeData{}
	case NodePaymentMethod:
		target = &PaymentMethodData{}
	case NodeCondition:
		target = &ConditionData{}
	case NodeProposal:
		target = &ProposalData{}
	case NodeSiteVisit:
		target = &SiteVisitData{}
	case NodeFollowUp:
		target = &FollowUpData{}
	case NodeHandoff:
		target = &HandoffData{}
	case NodeMessage:
		target = &MessageData{}
	default:
		return nil, fmt.Errorf("unknown node type: %q", t)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true, // JSON numbers arrive as float64
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build payload decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", t, err)
	}
	return target, nil
}
