package instruction

import (
	"fmt"
	"strings"
)

// DefaultMaxDepth 段落巢狀深度上限
// 結構上不可能循環，但仍防禦性限制病態輸入的遞迴深度
const DefaultMaxDepth = 10

// Labels 輸出文件用的標籤（原系統經 gettext 在地化，這裡由設定提供）
type Labels struct {
	Step    string // 步驟標籤格式，需含一個 %d
	Section string // 無名段落的預設名稱
}

// DefaultLabels 預設標籤
func DefaultLabels() Labels {
	return Labels{Step: "Step %d", Section: "Instructions"}
}

// Fragment 單一已渲染的指示區塊，按走訪順序產出，順序即顯示順序
type Fragment struct {
	Text    string // 含前導標題記號的完整區塊
	Step    int    // 段落內 1 起算的步驟序號；段落標題為 0
	Section bool   // 是否為段落標題區塊
}

// Flatten 以預設深度上限攤平單一指示項目
// 回傳片段序列與下一個未使用的步驟序號，供呼叫端串接兄弟項目
func Flatten(item Item, marker string, start int, labels Labels) ([]Fragment, int, error) {
	return flatten(item, marker, start, labels, DefaultMaxDepth)
}

func flatten(item Item, marker string, start int, labels Labels, depth int) ([]Fragment, int, error) {
	if depth <= 0 {
		return nil, start, fmt.Errorf("section nesting exceeds depth limit")
	}

	switch item.Kind {
	case KindText:
		return []Fragment{stepFragment(marker, start, item.Text, labels)}, start + 1, nil

	case KindStep:
		frags := make([]Fragment, 0, 2)
		// 許多來源的 name 與 text 重複（或 name 是 text 的截斷版）
		// 只有 name 不是 text 前綴時才另外輸出，避免重複顯示
		if item.Name != "" && !strings.HasPrefix(item.Text, strings.TrimRight(item.Name, ".")) {
			frags = append(frags, stepFragment(marker, start, item.Name, labels))
		}
		frags = append(frags, stepFragment(marker, start, item.Text, labels))
		return frags, start + 1, nil

	case KindSection:
		name := item.Name
		if name == "" {
			name = labels.Section
		}
		frags := []Fragment{{Text: "\n\n" + name + "\n\n", Section: true}}
		// 段落本身不算步驟：子項目重新從 1 編號，標題記號加深一層
		child := 1
		for _, it := range item.Items {
			sub, next, err := flatten(it, marker+"#", child, labels, depth-1)
			if err != nil {
				return nil, start, err
			}
			frags = append(frags, sub...)
			child = next
		}
		return frags, start, nil

	default:
		return nil, start, fmt.Errorf("%w: unknown item kind %d", ErrMalformedPayload, item.Kind)
	}
}

func stepFragment(marker string, ordinal int, text string, labels Labels) Fragment {
	return Fragment{
		Text: "\n\n" + marker + fmt.Sprintf(labels.Step, ordinal) + "\n\n" + text,
		Step: ordinal,
	}
}
