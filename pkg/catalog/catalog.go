// Package catalog is the static registry of node-type definitions used by
// the flow editor: display label, palette category, default payload and
// rendering color. It is the single source of defaults for newly added
// nodes and for template authoring.
package catalog

import (
	"fmt"

	"github.com/caue-mor/saas-solar/pkg/domain"
)

// Palette categories, in the order the editor sidebar shows them.
const (
	CategoryConversation = "conversation"
	CategoryCapture      = "capture"
	CategoryLogic        = "logic"
	CategoryClosing      = "closing"
)

// Definition describes one node type for the editor palette.
type Definition struct {
	Type     domain.NodeType `json:"type"`
	Label    string          `json:"label"`
	Category string          `json:"category"`
	// Color is the hex color the canvas renders the node with.
	Color       string         `json:"color"`
	DefaultData map[string]any `json:"defaultData"`
}

// Lookup returns the definition for a node type. Unknown types are an
// error: the catalog is closed for dispatch.
func Lookup(t domain.NodeType) (Definition, error) {
	switch t {
	case domain.NodeGreeting:
		return Definition{
			Type: t, Label: "Saudação", Category: CategoryConversation, Color: "#22c55e",
			DefaultData: map[string]any{
				"message": "Olá! 👋 Sou o assistente de energia solar. Posso te ajudar a economizar na conta de luz?",
			},
		}, nil
	case domain.NodeQuestion:
		return Definition{
			Type: t, Label: "Pergunta", Category: CategoryConversation, Color: "#3b82f6",
			DefaultData: map[string]any{
				"question": "Qual é a sua pergunta?",
				"saveAs":   "",
			},
		}, nil
	case domain.NodeConsumptionCapture:
		return Definition{
			Type: t, Label: "Consumo Mensal", Category: CategoryCapture, Color: "#eab308",
			DefaultData: map[string]any{
				"prompt": "Quanto você paga de energia por mês, em média?",
				"unit":   "brl",
				"saveAs": "consumo_mensal",
			},
		}, nil
	case domain.NodeBillPhoto:
		return Definition{
			Type: t, Label: "Foto da Conta", Category: CategoryCapture, Color: "#f59e0b",
			DefaultData: map[string]any{
				"prompt":   "Pode me enviar uma foto da sua conta de luz? 📸",
				"required": true,
			},
		}, nil
	case domain.NodeRoofPhoto:
		return Definition{
			Type: t, Label: "Foto do Telhado", Category: CategoryCapture, Color: "#f97316",
			DefaultData: map[string]any{
				"prompt":   "Agora me envie uma foto do seu telhado, por favor.",
				"required": false,
			},
		}, nil
	case domain.NodeInstallationType:
		return Definition{
			Type: t, Label: "Tipo de Instalação", Category: CategoryCapture, Color: "#84cc16",
			DefaultData: map[string]any{
				"prompt":  "Onde o sistema seria instalado?",
				"options": []string{"Telhado", "Solo", "Garagem/Carport"},
				"saveAs":  "tipo_instalacao",
			},
		}, nil
	case domain.NodePaymentMethod:
		return Definition{
			Type: t, Label: "Forma de Pagamento", Category: CategoryCapture, Color: "#14b8a6",
			DefaultData: map[string]any{
				"prompt":  "Como você prefere pagar?",
				"options": []string{"À vista", "Financiamento", "Cartão"},
				"saveAs":  "forma_pagamento",
			},
		}, nil
	case domain.NodeCondition:
		return Definition{
			Type: t, Label: "Condição", Category: CategoryLogic, Color: "#a855f7",
			DefaultData: map[string]any{
				"variable": "",
				"operator": "gte",
				"value":    "",
			},
		}, nil
	case domain.NodeProposal:
		return Definition{
			Type: t, Label: "Proposta", Category: CategoryClosing, Color: "#06b6d4",
			DefaultData: map[string]any{
				"message":          "Preparei uma proposta personalizada para você! ☀️",
				"includeFinancing": true,
			},
		}, nil
	case domain.NodeSiteVisit:
		return Definition{
			Type: t, Label: "Visita Técnica", Category: CategoryClosing, Color: "#8b5cf6",
			DefaultData: map[string]any{
				"message": "Podemos agendar uma visita técnica sem compromisso. Qual o melhor dia?",
			},
		}, nil
	case domain.NodeFollowUp:
		return Definition{
			Type: t, Label: "Follow-up", Category: CategoryClosing, Color: "#ec4899",
			DefaultData: map[string]any{
				"message":    "Oi! Ainda está pensando na proposta? Estou por aqui. 😊",
				"delayHours": 24,
			},
		}, nil
	case domain.NodeHandoff:
		return Definition{
			Type: t, Label: "Transferir para Vendedor", Category: CategoryClosing, Color: "#ef4444",
			DefaultData: map[string]any{
				"message":      "Vou te conectar com um dos nossos consultores!",
				"notifySeller": true,
			},
		}, nil
	case domain.NodeMessage:
		return Definition{
			Type: t, Label: "Mensagem", Category: CategoryConversation, Color: "#64748b",
			DefaultData: map[string]any{
				"message": "",
			},
		}, nil
	default:
		return Definition{}, fmt.Errorf("unknown node type: %q", t)
	}
}

// MustLookup is Lookup for types known at compile time (catalog members).
func MustLookup(t domain.NodeType) Definition {
	def, err := Lookup(t)
	if err != nil {
		panic(err)
	}
	return def
}

// Definitions returns the full palette in catalog order.
func Definitions() []Definition {
	types := domain.AllNodeTypes()
	defs := make([]Definition, 0, len(types))
	for _, t := range types {
		defs = append(defs, MustLookup(t))
	}
	return defs
}

// DefaultData returns a fresh copy of the default payload for a type, safe
// for the caller to mutate.
func DefaultData(t domain.NodeType) (map[string]any, error) {
	def, err := Lookup(t)
	if err != nil {
		return nil, err
	}
	data := make(map[string]any, len(def.DefaultData))
	for k, v := range def.DefaultData {
		data[k] = v
	}
	return data, nil
}
