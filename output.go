// Copyright 2016 - 2021 The govisio Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package govisio

// PaintCallKind enumerates the PaintInterface operations an OutputElementList
// can buffer (spec.md §4.4).
type PaintCallKind int

const (
	CallSetStyle PaintCallKind = iota
	CallStartLayer
	CallEndLayer
	CallDrawPath
	CallDrawEllipse
	CallDrawGraphicObject
	CallStartTextObject
	CallOpenParagraph
	CallCloseParagraph
	CallOpenSpan
	CallCloseSpan
	CallInsertText
	CallInsertTab
	CallInsertSpace
	CallInsertLineBreak
	CallInsertField
	CallEndTextObject
)

// PaintCall is one buffered PaintInterface operation. Replay (Flush) is a
// trivial dispatch; no logic lives in the buffer itself, per spec.md §4.4.
type PaintCall struct {
	Kind     PaintCallKind
	Props    Props
	Gradient []Props
	Path     []PathElement
	Data     []byte
	Text     string
}

// OutputElementList is a per-shape FIFO of paint calls (spec.md §4.4, §4.3.10).
type OutputElementList struct {
	calls []PaintCall
}

func (l *OutputElementList) push(c PaintCall) { l.calls = append(l.calls, c) }

func (l *OutputElementList) SetStyle(props Props, gradient []Props) {
	l.push(PaintCall{Kind: CallSetStyle, Props: props, Gradient: gradient})
}
func (l *OutputElementList) StartLayer(props Props) { l.push(PaintCall{Kind: CallStartLayer, Props: props}) }
func (l *OutputElementList) EndLayer()               { l.push(PaintCall{Kind: CallEndLayer}) }
func (l *OutputElementList) DrawPath(path []PathElement) {
	l.push(PaintCall{Kind: CallDrawPath, Path: path})
}
func (l *OutputElementList) DrawEllipse(props Props) { l.push(PaintCall{Kind: CallDrawEllipse, Props: props}) }
func (l *OutputElementList) DrawGraphicObject(props Props, data []byte) {
	l.push(PaintCall{Kind: CallDrawGraphicObject, Props: props, Data: data})
}
func (l *OutputElementList) StartTextObject(props Props) {
	l.push(PaintCall{Kind: CallStartTextObject, Props: props})
}
func (l *OutputElementList) EndTextObject()    { l.push(PaintCall{Kind: CallEndTextObject}) }
func (l *OutputElementList) OpenParagraph(p Props) { l.push(PaintCall{Kind: CallOpenParagraph, Props: p}) }
func (l *OutputElementList) CloseParagraph()       { l.push(PaintCall{Kind: CallCloseParagraph}) }
func (l *OutputElementList) OpenSpan(p Props)      { l.push(PaintCall{Kind: CallOpenSpan, Props: p}) }
func (l *OutputElementList) CloseSpan()            { l.push(PaintCall{Kind: CallCloseSpan}) }
func (l *OutputElementList) InsertText(s string)   { l.push(PaintCall{Kind: CallInsertText, Text: s}) }
func (l *OutputElementList) InsertTab()             { l.push(PaintCall{Kind: CallInsertTab}) }
func (l *OutputElementList) InsertSpace()           { l.push(PaintCall{Kind: CallInsertSpace}) }
func (l *OutputElementList) InsertLineBreak()       { l.push(PaintCall{Kind: CallInsertLineBreak}) }
func (l *OutputElementList) InsertField(p Props)    { l.push(PaintCall{Kind: CallInsertField, Props: p}) }

// IsEmpty reports whether the list has buffered no calls.
func (l *OutputElementList) IsEmpty() bool { return len(l.calls) == 0 }

// Flush replays every buffered call against painter, in FIFO order.
func (l *OutputElementList) Flush(painter PaintInterface) {
	for _, c := range l.calls {
		switch c.Kind {
		case CallSetStyle:
			painter.SetStyle(c.Props, c.Gradient)
		case CallStartLayer:
			painter.StartLayer(c.Props)
		case CallEndLayer:
			painter.EndLayer()
		case CallDrawPath:
			painter.DrawPath(c.Path)
		case CallDrawEllipse:
			painter.DrawEllipse(c.Props)
		case CallDrawGraphicObject:
			painter.DrawGraphicObject(c.Props, c.Data)
		case CallStartTextObject:
			painter.StartTextObject(c.Props)
		case CallEndTextObject:
			painter.EndTextObject()
		case CallOpenParagraph:
			painter.OpenParagraph(c.Props)
		case CallCloseParagraph:
			painter.CloseParagraph()
		case CallOpenSpan:
			painter.OpenSpan(c.Props)
		case CallCloseSpan:
			painter.CloseSpan()
		case CallInsertText:
			painter.InsertText(c.Text)
		case CallInsertTab:
			painter.InsertTab()
		case CallInsertSpace:
			painter.InsertSpace()
		case CallInsertLineBreak:
			painter.InsertLineBreak()
		case CallInsertField:
			painter.InsertField(c.Props)
		}
	}
}

// Append concatenates other's calls onto l, in order.
func (l *OutputElementList) Append(other *OutputElementList) {
	if other == nil {
		return
	}
	l.calls = append(l.calls, other.calls...)
}

// shapeOutput is one shape's graphics calls plus its text calls, kept
// separate so the page can emit every shape's graphics, depth-first
// post-order, before any shape's text (spec.md §4.3.10, end-to-end
// scenario 6: "all group children's graphics, then all group children's
// text"). See contentcollector.go's emitPostOrder for how the two passes
// are assembled from a page's shape tree.
type shapeOutput struct {
	graphics OutputElementList
	text     OutputElementList
}
