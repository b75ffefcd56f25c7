package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// ISO-8601 時長（schema.org prepTime/cookTime 常見形式，如 PT1H30M、P1DT2H）
	isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

	firstIntPattern     = regexp.MustCompile(`\d+`)
	firstDecimalPattern = regexp.MustCompile(`\d+\.?\d*`)
)

// DurationToMinutes 將 ISO-8601 時長轉為分鐘數
// 非 ISO 格式時退回字串中的第一個整數；都沒有則為 0
func DurationToMinutes(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if m := isoDurationPattern.FindStringSubmatch(value); m != nil {
		days := atoiOrZero(m[1])
		hours := atoiOrZero(m[2])
		minutes := atoiOrZero(m[3])
		seconds := atoiOrZero(m[4])
		return days*24*60 + hours*60 + minutes + seconds/60
	}

	// 部分網站直接寫「30 min」之類的自由文字
	if m := firstIntPattern.FindString(value); m != "" {
		n, _ := strconv.Atoi(m)
		return n
	}
	return 0
}

// ParseServings 取字串中的第一個整數作為份量，取不到時為 1
// 「4 Portionen」→ 4；「serves four」→ 1
func ParseServings(value string) int {
	if m := firstIntPattern.FindString(value); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

// ExtractDecimal 取字串中的第一個十進位數值，取不到時為 0
func ExtractDecimal(value string) float64 {
	if m := firstDecimalPattern.FindString(value); m != "" {
		n, _ := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64)
		return n
	}
	return 0
}

// ParseAmount 解析食材數量
// 接受歐式逗號小數（「0,5」）；空值或解析失敗視為無數量
func ParseAmount(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, true
	}

	normalized := strings.ReplaceAll(value, ",", ".")
	if n, err := strconv.ParseFloat(normalized, 64); err == nil {
		return n, false
	}

	// 「2 EL」之類數值帶單位殘留的情況，退回第一個十進位數值
	if n := ExtractDecimal(normalized); n != 0 {
		return n, false
	}
	return 0, true
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
