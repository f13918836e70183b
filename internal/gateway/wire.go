package gateway

// Wire types for the generateContent endpoint.

type genRequest struct {
	SystemInstruction *content          `json:"system_instruction,omitempty"`
	Contents          []content         `json:"contents"`
	Tools             []tool            `json:"tools,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generationConfig struct {
	MaxOutputTokens int             `json:"maxOutputTokens,omitempty"`
	ThinkingConfig  *thinkingConfig `json:"thinkingConfig,omitempty"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type genResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks,omitempty"`
}

type groundingChunk struct {
	Web *webSource `json:"web,omitempty"`
}

type webSource struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

func (r *genResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	out := ""
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return out
}

func (r *genResponse) sources() []Source {
	if len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []Source
	for _, ch := range r.Candidates[0].GroundingMetadata.GroundingChunks {
		if ch.Web != nil && ch.Web.URI != "" {
			out = append(out, Source{URI: ch.Web.URI, Title: ch.Web.Title})
		}
	}
	return out
}
