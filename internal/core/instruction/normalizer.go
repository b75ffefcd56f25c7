package instruction

import (
	"regexp"
	"strings"
)

// 料理機指示的構成要素：
// 時長（「依包裝指示」或 數字+秒/分）、可選溫度、可選反轉、速度檔位
const (
	timeExpr    = `(?:Zeit gemäß Packungsangabe|\d+ (?:[Ss]e[kc]|[Mm]in))`
	tempExpr    = `(?:/\d+°C)?`
	reverseExpr = `(?:/|/Linkslauf)?`
	speedExpr   = `(?:Stufe \d+|Stufe |)`
	fullExpr    = timeExpr + `\.?` + tempExpr + reverseExpr + `/` + speedExpr
)

var (
	// 先比對已加粗的片段並原樣保留，確保重複正規化不會再包一層
	appliancePattern = regexp.MustCompile(`\*\*` + fullExpr + `\*\*|` + fullExpr)

	// 固定片語同樣用粗體標示
	phrasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\*\*Rühraufsatz einsetzen\*\*|Rühraufsatz einsetzen`),
		regexp.MustCompile(`\*\*Rühraufsatz entfernen\*\*|Rühraufsatz entfernen`),
	}

	// 料理機私有區字符 → 可讀文字（替換後字符消失，天然冪等）
	glyphReplacer = strings.NewReplacer(
		"\ue003", "**Linkslauf**",
		"\ue019", "**Kochlöffel**",
		"\ue01a", "**Kneten**",
	)
)

// Normalize 正規化單一指示字串
// 純函式且冪等：Normalize(Normalize(s)) == Normalize(s)
func Normalize(instruction string) string {
	if instruction == "" {
		return ""
	}
	out := appliancePattern.ReplaceAllStringFunc(instruction, boldOnce)
	out = glyphReplacer.Replace(out)
	for _, p := range phrasePatterns {
		out = p.ReplaceAllStringFunc(out, boldOnce)
	}
	return out
}

// boldOnce 將比對片段加粗；已加粗者原樣保留
func boldOnce(match string) string {
	if strings.HasPrefix(match, "**") {
		return match
	}
	return "**" + match + "**"
}
