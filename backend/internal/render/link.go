package render

import (
	"fmt"
	"strconv"

	"github.com/itchan-dev/msgboard/shared/domain"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var kindMessageLink = ast.NewNodeKind("MessageLink")

// messageLink is a ">>N" reference to message N.
type messageLink struct {
	ast.BaseInline
	Index domain.MsgIndex
}

func (n *messageLink) Kind() ast.NodeKind {
	return kindMessageLink
}

func (n *messageLink) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Index": strconv.FormatUint(n.Index, 10)}, nil)
}

type messageLinkParser struct{}

func (messageLinkParser) Trigger() []byte {
	return []byte{'>'}
}

func (messageLinkParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < 3 || line[0] != '>' || line[1] != '>' {
		return nil
	}
	end := 2
	for end < len(line) && line[end] >= '0' && line[end] <= '9' {
		end++
	}
	if end == 2 {
		return nil
	}
	// overflowing numbers stay plain text
	index, err := strconv.ParseUint(string(line[2:end]), 10, 64)
	if err != nil {
		return nil
	}
	block.Advance(end)
	return &messageLink{Index: index}
}

type messageLinkRenderer struct{}

func (r messageLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindMessageLink, r.render)
}

func (messageLinkRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*messageLink)
	_, err := fmt.Fprintf(w, `<a class="message-link" data-message-index="%d" href="/v1/messages/%d">&gt;&gt;%d</a>`, n.Index, n.Index, n.Index)
	return ast.WalkSkipChildren, err
}
