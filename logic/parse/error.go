package parse

import "fmt"

// ParseError 表示公告文本和现有语法对不上，需要人工排查后补规则，
// 不允许静默返回空结果。Input 保留出错的原文方便定位。
type ParseError struct {
	Reason string
	Input  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("无法解析公告内容(%s): %s", e.Reason, e.Input)
}
