package parse

import (
	"regexp"
	"strings"

	"holiday-cn/types"
)

// 常规公告：一、元旦：2018年12月30日至2019年1月1日放假调休…
var normalRuleRe = regexp.MustCompile(`^[一二三四五六七八九十]、(.+?)：(.+)$`)

// 补充公告的标题行，从中取出被调整的节日名
var patchNameRe = regexp.MustCompile(`\d+年([^和、]{2,})(?:假期|放假).*安排`)

// 补充公告的条目行
var (
	patchRuleRe = regexp.MustCompile(`^[一二三四五六七八九十]、(.+)$`)
	monthDayRe  = regexp.MustCompile(`\d+月\d+日`)
)

// ExtractRules 从公告正文行里提取 (节日名, 调休描述) 列表。
// 重复的行只保留第一次出现；一条都提不出来视为公告格式变了，必须报错。
func ExtractRules(lines []string) ([]types.Rule, error) {
	lines = dedupLines(lines)

	rules := extractNormalRules(lines)
	rules = append(rules, extractPatchRules(lines)...)
	if len(rules) == 0 {
		return nil, &ParseError{Reason: "提取不到任何放假安排", Input: strings.Join(lines, "\n")}
	}
	return rules, nil
}

// extractNormalRules 整年安排公告：每个序号行对应一条节日安排
func extractNormalRules(lines []string) []types.Rule {
	var rules []types.Rule
	for _, line := range lines {
		if m := normalRuleRe.FindStringSubmatch(line); m != nil {
			rules = append(rules, types.Rule{Name: m[1], Description: m[2]})
		}
	}
	return rules
}

// extractPatchRules 补充公告：标题行给出节日名，
// 之后的序号行里只有真正带 "x月x日" 的才是调休条目（过滤掉程序性的前言）
func extractPatchRules(lines []string) []types.Rule {
	var rules []types.Rule
	name := ""
	for _, line := range lines {
		if m := patchNameRe.FindStringSubmatch(line); m != nil {
			name = m[1]
		}
		if name == "" {
			continue
		}
		m := patchRuleRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if !monthDayRe.MatchString(m[1]) {
			continue
		}
		rules = append(rules, types.Rule{Name: name, Description: m[1]})
	}
	return rules
}

// dedupLines 按内容去重，保留首次出现的顺序
func dedupLines(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}
