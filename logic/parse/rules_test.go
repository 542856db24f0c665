package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRulesNormal(t *testing.T) {
	lines := []string{
		"国务院办公厅关于2019年部分节假日安排的通知",
		"经国务院批准，现将2019年元旦、春节、清明节、劳动节、端午节、中秋节和国庆节放假调休日期的具体安排通知如下。",
		"一、元旦：2018年12月30日至2019年1月1日放假调休，共3天。2018年12月29日（星期六）上班。",
		"二、春节：2月4日至10日放假调休，共7天。2月2日（星期六）、2月3日（星期日）上班。",
		"三、清明节：4月5日放假，与周末连休。",
	}

	rules, err := ExtractRules(lines)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, "元旦", rules[0].Name)
	assert.Equal(t, "2018年12月30日至2019年1月1日放假调休，共3天。2018年12月29日（星期六）上班。", rules[0].Description)
	assert.Equal(t, "春节", rules[1].Name)
	assert.Equal(t, "清明节", rules[2].Name)
}

func TestExtractRulesDedupLines(t *testing.T) {
	lines := []string{
		"一、元旦：1月1日放假。",
		"一、元旦：1月1日放假。",
	}

	rules, err := ExtractRules(lines)
	require.NoError(t, err)
	assert.Len(t, rules, 1)
}

func TestExtractRulesPatch(t *testing.T) {
	// 补充公告没有 "<节日>：" 前缀，节日名来自标题行，
	// 不带日期的序号行（程序性条款）要被过滤掉
	lines := []string{
		"国务院办公厅关于2019年劳动节放假安排的通知",
		"经研究决定，现将2019年劳动节放假调休日期的具体安排通知如下。",
		"一、2019年5月1日至4日放假调休，共4天。4月28日（星期日）、5月5日（星期日）上班。",
		"二、各地区、各部门要妥善安排好值班和安全、保卫等工作。",
	}

	rules, err := ExtractRules(lines)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "劳动节", rules[0].Name)
	assert.Equal(t, "2019年5月1日至4日放假调休，共4天。4月28日（星期日）、5月5日（星期日）上班。", rules[0].Description)
}

func TestExtractRulesPreambleDoesNotTriggerPatch(t *testing.T) {
	// 整年公告的前言里 "2019年" 和 "放假" 之间隔着顿号列表，
	// 不能被误认成补充公告的节日名
	lines := []string{
		"经国务院批准，现将2019年元旦、春节、清明节、劳动节、端午节、中秋节和国庆节放假调休日期的具体安排通知如下。",
		"一、元旦：2018年12月30日至2019年1月1日放假调休，共3天。",
	}

	rules, err := ExtractRules(lines)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "元旦", rules[0].Name)
}

func TestExtractRulesEmptyIsFatal(t *testing.T) {
	lines := []string{
		"国务院办公厅关于做好值班工作的通知",
		"各地区、各部门要妥善安排。",
	}

	_, err := ExtractRules(lines)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Input, "值班工作")
}
