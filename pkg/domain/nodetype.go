package domain

// NodeType identifies the behavior of a flow node.
//
// The set is closed for dispatch: every consumer (catalog, validator,
// renderer, template instantiator) must handle all members exhaustively.
// Adding a member means visiting every switch over NodeType.
type NodeType string

const (
	// NodeGreeting opens the conversation. Every active flow needs one.
	NodeGreeting NodeType = "GREETING"
	// NodeQuestion asks the lead a free-form qualifying question.
	NodeQuestion NodeType = "QUESTION"
	// NodeConsumptionCapture collects the monthly energy consumption (kWh or R$).
	NodeConsumptionCapture NodeType = "CONSUMPTION_CAPTURE"
	// NodeBillPhoto requests a photo of the energy bill.
	NodeBillPhoto NodeType = "BILL_PHOTO"
	// NodeRoofPhoto requests a photo of the roof.
	NodeRoofPhoto NodeType = "ROOF_PHOTO"
	// NodeInstallationType asks whether the install is roof, ground or carport.
	NodeInstallationType NodeType = "INSTALLATION_TYPE"
	// NodePaymentMethod asks for the preferred payment method.
	NodePaymentMethod NodeType = "PAYMENT_METHOD"
	// NodeCondition branches on a captured variable. Exposes the
	// HandleTrue and HandleFalse outputs.
	NodeCondition NodeType = "CONDITION"
	// NodeProposal generates and sends the solar proposal.
	NodeProposal NodeType = "PROPOSAL"
	// NodeSiteVisit offers to schedule a technical site visit.
	NodeSiteVisit NodeType = "SITE_VISIT"
	// NodeFollowUp schedules escalating follow-up messages.
	NodeFollowUp NodeType = "FOLLOWUP"
	// NodeHandoff transfers the conversation to a human seller.
	NodeHandoff NodeType = "HANDOFF"
	// NodeMessage sends a plain message and moves on.
	NodeMessage NodeType = "MESSAGE"
)

// Named outputs of a CONDITION node.
const (
	HandleTrue  = "true"
	HandleFalse = "false"
)

// AllNodeTypes returns every NodeType member in catalog order.
func AllNodeTypes() []NodeType {
	return []NodeType{
		NodeGreeting,
		NodeQuestion,
		NodeConsumptionCapture,
		NodeBillPhoto,
		NodeRoofPhoto,
		NodeInstallationType,
		NodePaymentMethod,
		NodeCondition,
		NodeProposal,
		NodeSiteVisit,
		NodeFollowUp,
		NodeHandoff,
		NodeMessage,
	}
}

// Valid reports whether t is a known NodeType.
func (t NodeType) Valid() bool {
	switch t {
	case NodeGreeting, NodeQuestion, NodeConsumptionCapture, NodeBillPhoto,
		NodeRoofPhoto, NodeInstallationType, NodePaymentMethod, NodeCondition,
		NodeProposal, NodeSiteVisit, NodeFollowUp, NodeHandoff, NodeMessage:
		return true
	}
	return false
}
