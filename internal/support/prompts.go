package support

import "strings"

const systemPromptTR = `Sen bir soğutma kulesi üreticisinin müşteri destek asistanısın.

Kurallar:
- Yalnızca aşağıdaki BİLGİ bölümündeki verilere dayanarak cevap ver.
- Bilgi yoksa uydurma; bir temsilcinin yardımcı olacağını söyle.
- Fiyat asla yazma. Fiyat "not_public" ise satış ekibinin teklif göndereceğini belirt.
- Kısa, net ve kibar yaz. Müşterinin dilinde cevap ver.`

const systemPromptEN = `You are the customer support assistant of a cooling tower manufacturer.

Rules:
- Answer only from the data in the KNOWLEDGE section below.
- If the data is missing, do not invent anything; say an operator will help.
- Never quote prices. When a price is "not_public", say the sales team will send a quote.
- Be short, clear and polite. Answer in the customer's language.`

const (
	knowledgeHeaderTR = "BİLGİ:"
	knowledgeHeaderEN = "KNOWLEDGE:"
	noKnowledgeTR     = "(eşleşen kayıt yok)"
	noKnowledgeEN     = "(no matching records)"
)

const (
	fallbackTR = "Sorunuzu bir temsilcimize ilettik, en kısa sürede size dönüş yapacağız."
	fallbackEN = "We have passed your question to an operator who will get back to you shortly."
)

func isTurkish(locale string) bool {
	return strings.ToLower(strings.TrimSpace(locale)) != "en"
}

// BuildSystemPrompt combines the fixed rules with the knowledge block built
// for the current question.
func BuildSystemPrompt(locale, knowledgeText string) string {
	prompt, header, empty := systemPromptTR, knowledgeHeaderTR, noKnowledgeTR
	if !isTurkish(locale) {
		prompt, header, empty = systemPromptEN, knowledgeHeaderEN, noKnowledgeEN
	}

	body := strings.TrimSpace(knowledgeText)
	if body == "" {
		body = empty
	}

	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\n")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(body)
	return b.String()
}

// FallbackMessage is sent to the client when no provider produced a reply.
func FallbackMessage(locale string) string {
	if isTurkish(locale) {
		return fallbackTR
	}
	return fallbackEN
}
