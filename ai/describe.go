package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/barrabusiness/lead_management_system/backend/models"
)

// Fallback is returned whenever generation fails; the seller form shows it
// and lets the owner write the description by hand.
const Fallback = "Não foi possível gerar a descrição automática. Por favor, preencha manualmente."

// emptyResult is returned when the provider answers with no text.
const emptyResult = "Descrição não disponível no momento."

// PropertyDetails is the subset of a listing the prompt is built from.
type PropertyDetails struct {
	Type      models.PropertyType `json:"type"`
	Region    string              `json:"region"`
	CondoName string              `json:"condoName"`
	Bedrooms  int                 `json:"bedrooms"`
	Area      float64             `json:"area"`
}

// Writer turns listing details into a selling description. A nil generator
// (no API key configured) always yields the fallback.
type Writer struct {
	generator TextGenerator
}

func NewWriter(generator TextGenerator) *Writer {
	return &Writer{generator: generator}
}

// Describe never fails: any generation error degrades to the fixed
// fallback string, logged and not propagated.
func (w *Writer) Describe(ctx context.Context, details PropertyDetails) string {
	if w.generator == nil {
		return Fallback
	}

	prompt := fmt.Sprintf(`Atue como um corretor de imóveis de luxo especializado na Barra da Tijuca, Rio de Janeiro.
Escreva uma descrição vendedora, elegante e sofisticada para um imóvel com as seguintes características:

Tipo: %s
Condomínio: %s
Localização: %s, Barra da Tijuca
Quartos: %d
Área: %.0fm²

A descrição deve ter no máximo 3 parágrafos. Enfatize exclusividade, conforto e a localização privilegiada.
Não use hashtags. Use tom formal e convidativo.`,
		details.Type, details.CondoName, details.Region, details.Bedrooms, details.Area)

	text, err := w.generator.GenerateText(ctx, "", prompt)
	if err != nil {
		log.Printf("Description generation failed: %v", err)
		return Fallback
	}
	if strings.TrimSpace(text) == "" {
		return emptyResult
	}
	return text
}
