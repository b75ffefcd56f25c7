package instruction

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload 上游轉接器送來的指示內容不在約定聯集內
// （字串 / 字串清單 / HowToStep / HowToSection），屬於契約違反，直接失敗
var ErrMalformedPayload = errors.New("malformed instruction payload")

// Kind 指示項目種類
type Kind int

const (
	// KindText 純文字指示
	KindText Kind = iota
	// KindStep 帶名稱與內文的單一步驟（schema.org HowToStep）
	KindStep
	// KindSection 含子項目的段落（schema.org HowToSection），可任意巢狀
	KindSection
)

// Item 指示項目（封閉的標記聯集）
// Section 的 Items 只會引用下層項目，結構上不可能出現循環
type Item struct {
	Kind  Kind
	Name  string
	Text  string
	Items []Item
}

// Payload 原始指示內容
// 接受三種 JSON 形狀：純字串、項目陣列、單一 @type 物件
type Payload struct {
	Items []Item

	// raw 保留原始位元組，匯入服務以此產生快取鍵
	raw []byte
}

// Raw 回傳原始 JSON 位元組
func (p *Payload) Raw() []byte {
	return p.raw
}

// Empty 檢查是否沒有任何指示
func (p *Payload) Empty() bool {
	return len(p.Items) == 0
}

// UnmarshalJSON 實現 json.Unmarshaler
func (p *Payload) UnmarshalJSON(data []byte) error {
	p.raw = append([]byte(nil), data...)

	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	switch v := probe.(type) {
	case nil:
		p.Items = nil
		return nil
	case string:
		p.Items = []Item{{Kind: KindText, Text: v}}
		return nil
	case []interface{}:
		items := make([]Item, 0, len(v))
		for _, elem := range v {
			item, err := decodeItem(elem)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		p.Items = items
		return nil
	case map[string]interface{}:
		item, err := decodeItem(v)
		if err != nil {
			return err
		}
		p.Items = []Item{item}
		return nil
	default:
		return fmt.Errorf("%w: unsupported JSON value %T", ErrMalformedPayload, probe)
	}
}

// decodeItem 解碼單一項目：字串或帶 @type 標記的物件
func decodeItem(elem interface{}) (Item, error) {
	switch v := elem.(type) {
	case string:
		return Item{Kind: KindText, Text: v}, nil
	case map[string]interface{}:
		return decodeTagged(v)
	default:
		return Item{}, fmt.Errorf("%w: unsupported item %T", ErrMalformedPayload, elem)
	}
}

// decodeTagged 解碼 @type 標記物件
func decodeTagged(obj map[string]interface{}) (Item, error) {
	switch stringField(obj, "@type") {
	case "HowToStep":
		return Item{
			Kind: KindStep,
			Name: stringField(obj, "name"),
			Text: stringField(obj, "text"),
		}, nil
	case "HowToSection":
		// 部分網站用大寫的 Name
		name := stringField(obj, "name")
		if name == "" {
			name = stringField(obj, "Name")
		}
		children, _ := obj["itemListElement"].([]interface{})
		items := make([]Item, 0, len(children))
		for _, child := range children {
			item, err := decodeItem(child)
			if err != nil {
				return Item{}, err
			}
			items = append(items, item)
		}
		return Item{Kind: KindSection, Name: name, Items: items}, nil
	default:
		return Item{}, fmt.Errorf("%w: unknown @type %q", ErrMalformedPayload, stringField(obj, "@type"))
	}
}

func stringField(obj map[string]interface{}, key string) string {
	s, _ := obj[key].(string)
	return s
}
