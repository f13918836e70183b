package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// chatPersona instructs the assistant to identify as the designer's helper
// and to use live search for questions about current design trends.
const chatPersona = "أنت مساعد ذكي للمصمم محمد العثماني. استخدم البحث في جوجل إذا سألك العميل عن أحدث اتجاهات التصميم أو تقنيات الويب الحالية."

const codePersona = "أنت مصمم مواقع محترف. كودك نظيف، متجاوب، وجذاب بصرياً."

// apologyText is returned by Converse whenever the backend call fails; the
// raw error never reaches the caller.
const apologyText = "عذراً، حدث خطأ في معالجة طلبك."

// Client talks to the generative-language backend. It keeps no session
// state: the full conversation is re-sent on every conversational call.
type Client struct {
	baseURL   string
	apiKey    string
	chatModel string
	codeModel string
	http      *http.Client
}

type Options struct {
	BaseURL   string
	APIKey    string
	ChatModel string
	CodeModel string
	Timeout   time.Duration
}

func New(opt Options) *Client {
	if opt.BaseURL == "" {
		opt.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if opt.ChatModel == "" {
		opt.ChatModel = "gemini-3-flash-preview"
	}
	if opt.CodeModel == "" {
		opt.CodeModel = "gemini-3-pro-preview"
	}
	if opt.Timeout == 0 {
		opt.Timeout = 60 * time.Second
	}
	return &Client{
		baseURL:   opt.BaseURL,
		apiKey:    opt.APIKey,
		chatModel: opt.ChatModel,
		codeModel: opt.CodeModel,
		http:      &http.Client{Timeout: opt.Timeout},
	}
}

// Turn is one prior conversation turn, role "user" or "assistant".
type Turn struct {
	Role string
	Text string
}

// Source is a citation attached to a grounded reply.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// ConverseResult carries the reply plus the structured signals the order
// lifecycle keys on, so callers never have to scan the text themselves.
type ConverseResult struct {
	Text           string
	Sources        []Source
	DetectedPrice  string
	HasPriceSignal bool
}

// Converse sends the running conversation plus the new user turn. It never
// returns an error: any backend failure degrades to a fixed apology reply.
func (c *Client) Converse(ctx context.Context, userText string, history []Turn) *ConverseResult {
	contents := make([]content, 0, len(history)+1)
	for _, t := range history {
		role := "user"
		if t.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: t.Text}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: userText}}})

	req := genRequest{
		SystemInstruction: &content{Parts: []part{{Text: chatPersona}}},
		Contents:          contents,
		Tools:             []tool{{GoogleSearch: &struct{}{}}},
	}

	resp, err := c.generate(ctx, c.chatModel, req)
	if err != nil {
		log.Printf("[gateway] converse failed: %v", err)
		return &ConverseResult{Text: apologyText}
	}

	text := resp.text()
	return &ConverseResult{
		Text:           text,
		Sources:        resp.sources(),
		DetectedPrice:  DetectPrice(text),
		HasPriceSignal: HasCurrencyMarker(text),
	}
}

// GenerateSite asks for a complete, self-contained, RTL Arabic single-page
// HTML document built from the accumulated requirements. Unlike Converse,
// failures propagate so the lifecycle can revert its state.
func (c *Client) GenerateSite(ctx context.Context, requirements string) (string, error) {
	prompt := fmt.Sprintf("بناءً على المتطلبات التالية، قم بإنشاء ملف HTML كامل (Single Page) يتضمن CSS داخلي (Tailwind CDN) ليكون موقعاً احترافياً: %s. يجب أن يكون الموقع باللغة العربية واتجاه RTL.", requirements)

	req := genRequest{
		SystemInstruction: &content{Parts: []part{{Text: codePersona}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: 3000,
			ThinkingConfig:  &thinkingConfig{ThinkingBudget: 1000},
		},
	}

	resp, err := c.generate(ctx, c.codeModel, req)
	if err != nil {
		return "", fmt.Errorf("generate site: %w", err)
	}
	return resp.text(), nil
}

func (c *Client) generate(ctx context.Context, model string, req genRequest) (*genResponse, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("backend error (status %d)", resp.StatusCode)
	}

	var out genResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return nil, fmt.Errorf("backend returned no candidates")
	}
	return &out, nil
}
