package extract

import (
	"strings"
)

// PromptInput is everything the prompt depends on.
type PromptInput struct {
	Title        string
	SourceText   string
	PriorSources []string
}

const outputExample = `{
  "reading": "タイトルのよみ（ひらがな）",
  "summary": "1巻のあらすじ（日本語）",
  "good_reviews": ["良い評価1", "良い評価2", "良い評価3", "良い評価4", "良い評価5"],
  "bad_reviews": ["悪い評価1", "悪い評価2", "悪い評価3", "悪い評価4", "悪い評価5"],
  "authors": ["作者名"],
  "venues": ["掲載誌名"],
  "amazon_link": "https://...",
  "wikipedia_link": "https://...",
  "official_link": "https://...",
  "sources": ["https://..."]
}`

// BuildPrompt renders the extraction instruction. It is a pure function of
// in, so the same text can be pasted into another chat tool by hand.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString("漫画「")
	b.WriteString(strings.TrimSpace(in.Title))
	b.WriteString("」の1巻について、以下の条件で情報をまとめてJSONで出力してください。\n\n")

	b.WriteString("## 参考テキスト\n")
	source := strings.TrimSpace(in.SourceText)
	if source == "" || source == NoContentRetrieved {
		b.WriteString("参考テキストはありません。出版社の公式サイト、Wikipedia、書店の商品ページなど、公式・準公式の情報源について知っている内容をもとに回答してください。\n\n")
	} else {
		b.WriteString("以下は公式サイトや書店ページなどから取得したテキストです。このテキストの内容を優先して使ってください。\n")
		b.WriteString("-----\n")
		b.WriteString(source)
		b.WriteString("\n-----\n\n")
	}

	var prior []string
	for _, s := range in.PriorSources {
		if s = strings.TrimSpace(s); s != "" {
			prior = append(prior, s)
		}
	}
	if len(prior) > 0 {
		b.WriteString("## 以前に参照した情報源\n")
		for _, s := range prior {
			b.WriteString("- ")
			b.WriteString(s)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## 出力項目と条件\n")
	b.WriteString("- reading: タイトルの読みをひらがなで書く\n")
	b.WriteString("- summary: 1巻のあらすじを日本語で書く\n")
	b.WriteString("- good_reviews: 読者による好意的なレビューをちょうど5件。要約せず原文のまま引用する\n")
	b.WriteString("- bad_reviews: 読者による否定的なレビューをちょうど5件。要約せず原文のまま引用する\n")
	b.WriteString("- authors: 原作者・作画者の名前のリスト\n")
	b.WriteString("- venues: 連載誌・掲載媒体の名前のリスト\n")
	b.WriteString("- amazon_link / wikipedia_link / official_link: 参考リンクは最大3件（各1件）。不明な場合は空文字にする\n")
	b.WriteString("- sources: 回答に使った情報源のURLのリスト\n")
	b.WriteString("- アニメ・実写映画・ドラマ・舞台など、他メディアへの展開に関する情報やレビューは含めない\n")
	b.WriteString("- 必ず有効なJSONだけを返し、前後に説明文やコードブロックを付けない\n\n")

	b.WriteString("## 出力形式\n")
	b.WriteString(outputExample)
	b.WriteString("\n")
	return b.String()
}
