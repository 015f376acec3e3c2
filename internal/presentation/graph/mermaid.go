// Package graph renders flow documents as Mermaid flowcharts for the CLI.
package graph

import (
	"fmt"
	"strings"

	"github.com/caue-mor/saas-solar/pkg/catalog"
	"github.com/caue-mor/saas-solar/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from a flow document.
// Shapes carry the node semantics:
// - GREETING: ((Circle))
// - CONDITION: {Diamond}
// - QUESTION / capture nodes: [/Parallelogram/]
// - Default: [Rectangle]
// Condition branches are labeled with their handle ("true"/"false").
func GenerateMermaid(flow *domain.CompanyFlow) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range flow.Nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch node.Type {
		case domain.NodeGreeting:
			opener, closer = "((", "))"
		case domain.NodeCondition:
			opener, closer = "{", "}"
		case domain.NodeQuestion, domain.NodeConsumptionCapture, domain.NodeBillPhoto,
			domain.NodeRoofPhoto, domain.NodeInstallationType, domain.NodePaymentMethod:
			opener, closer = "[/", "/]"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, nodeLabel(node), closer))
	}

	for _, edge := range flow.Edges {
		safeSrc := sanitizeMermaidID(edge.Source)
		safeDst := sanitizeMermaidID(edge.Target)

		arrow := "-->"
		if edge.SourceHandle != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", edge.SourceHandle)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeSrc, arrow, safeDst))
	}

	sb.WriteString(categoryStyles(flow.Nodes))
	return sb.String()
}

// nodeLabel renders the palette label plus the node id so two nodes of the
// same type stay distinguishable in the chart.
func nodeLabel(node domain.FlowNode) string {
	def, err := catalog.Lookup(node.Type)
	if err != nil {
		return node.ID
	}
	return fmt.Sprintf("%s <br/> %s", def.Label, node.ID)
}

// categoryStyles colors each node with its palette color from the catalog.
func categoryStyles(nodes []domain.FlowNode) string {
	var sb strings.Builder
	styled := make(map[domain.NodeType]bool)

	for _, node := range nodes {
		def, err := catalog.Lookup(node.Type)
		if err != nil {
			continue
		}
		class := strings.ToLower(string(node.Type))
		if !styled[node.Type] {
			styled[node.Type] = true
			sb.WriteString(fmt.Sprintf("    classDef %s fill:%s,color:#fff;\n", class, def.Color))
		}
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", sanitizeMermaidID(node.ID), class))
	}

	if sb.Len() == 0 {
		return ""
	}
	return "\n" + sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
