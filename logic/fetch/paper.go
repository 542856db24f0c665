package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"holiday-cn/vars"
)

// 检索结果页里的公告链接
var paperLinkRe = regexp.MustCompile(`(?s)<li class="res-list".*?<a href="(.+?)".*?</li>`)

// 公告正文页的链接格式，格式变了说明站点改版，需要人工确认
var paperURLRe = regexp.MustCompile(`^http://www\.gov\.cn/zhengce/content/\d{4}-\d{2}/\d{2}/content_\d+\.htm$`)

// Client 国务院公告抓取客户端
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchPapers 检索某一年相关的公告链接，升序返回。
// 到了该出公告的年份却一条都搜不到，说明检索入口变了，报错等人工处理。
func (c *Client) SearchPapers(year int) ([]string, error) {
	params := url.Values{}
	params.Set("t", "paper")
	params.Set("advance", "true")
	params.Set("title", strconv.Itoa(year))
	params.Set("q", vars.SearchKeyword)
	params.Set("pcodeJiguan", vars.SearchCode)
	params.Set("puborg", vars.SearchOrg)

	body, err := c.get(vars.SearchURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(vars.PaperExclude))
	for _, u := range vars.PaperExclude {
		excluded[u] = true
	}

	var papers []string
	for _, m := range paperLinkRe.FindAllStringSubmatch(body, -1) {
		if excluded[m[1]] {
			continue
		}
		papers = append(papers, m[1])
	}
	papers = append(papers, vars.PaperInclude[year]...)
	sort.Strings(papers)

	if len(papers) == 0 && time.Now().Year() >= year {
		return nil, fmt.Errorf("找不到%d年的公告", year)
	}
	return papers, nil
}

// PaperText 抓取公告正文并抽成纯文本，段落间用换行分隔
func (c *Client) PaperText(paperURL string) (string, error) {
	if !paperURLRe.MatchString(paperURL) {
		return "", fmt.Errorf("公告链接格式变了，需要人工确认: %s", paperURL)
	}

	body, err := c.get(paperURL)
	if err != nil {
		return "", err
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("解析公告页面失败: %v", err)
	}

	container := findByClass(doc, "td", "b12c")
	if container == nil {
		return "", fmt.Errorf("公告页面里找不到正文容器: %s", paperURL)
	}

	// 正文用全角空格缩进段落，两个连续全角空格视为换段
	text := strings.ReplaceAll(nodeText(container), "　　", "\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("公告正文为空: %s", paperURL)
	}
	return text, nil
}

func (c *Client) get(rawURL string) (string, error) {
	resp, err := c.http.Get(rawURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed: %d: %s", resp.StatusCode, rawURL)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// findByClass 深度优先找第一个带指定 class 的元素
func findByClass(n *html.Node, tag, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		for _, attr := range n.Attr {
			if attr.Key == "class" && attr.Val == class {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByClass(child, tag, class); found != nil {
			return found
		}
	}
	return nil
}

// nodeText 拼接节点下的所有文本
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
