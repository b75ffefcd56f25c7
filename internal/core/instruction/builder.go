package instruction

import (
	"regexp"
	"strings"
)

// Options 文件產生選項
type Options struct {
	Labels       Labels
	MaxDepth     int
	SplitNumbers bool // 是否將「1.…\n2.…」形式的純文字拆成多個步驟
}

// DefaultOptions 預設選項
func DefaultOptions() Options {
	return Options{
		Labels:       DefaultLabels(),
		MaxDepth:     DefaultMaxDepth,
		SplitNumbers: true,
	}
}

// 純文字指示常見的「\n1.」「\n2.」編號邊界
var numberedBoundary = regexp.MustCompile(`\n\d+\.`)

// BuildDocument 將原始指示內容攤平成單一指示文件
// 逐片段正規化後串接；片段順序即最終步驟順序
func BuildDocument(p Payload, opts Options) (string, error) {
	if opts.Labels.Step == "" {
		opts.Labels = DefaultLabels()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	var sb strings.Builder
	ordinal := 1
	for _, item := range expandNumbered(p.Items, opts.SplitNumbers) {
		frags, next, err := flatten(item, "#", ordinal, opts.Labels, opts.MaxDepth)
		if err != nil {
			return "", err
		}
		for _, f := range frags {
			sb.WriteString(Normalize(f.Text))
		}
		ordinal = next
	}
	return sb.String(), nil
}

// expandNumbered 將單一編號純文字項目展開成多個文字項目
// 「1.打蛋\n2.加糖」→ 兩個步驟；無編號的字串維持單一步驟
func expandNumbered(items []Item, split bool) []Item {
	if !split || len(items) != 1 || items[0].Kind != KindText {
		return items
	}
	parts := numberedBoundary.Split(items[0].Text, -1)
	if len(parts) <= 1 {
		return items
	}
	expanded := make([]Item, 0, len(parts))
	for _, part := range parts {
		expanded = append(expanded, Item{Kind: KindText, Text: part})
	}
	return expanded
}
