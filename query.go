package roster

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []Component
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

// nodeMask builds the mask of the node's components. complete is false when
// any component is unregistered in ctl.
func (n *compositeNode) nodeMask(ctl Controller) (nodeMask mask.Mask, complete bool) {
	complete = true
	for _, comp := range n.components {
		info, err := ctl.ComponentInfo(comp)
		if err != nil {
			complete = false
			continue
		}
		nodeMask.Mark(uint32(info.Index))
	}
	return nodeMask, complete
}

func (n *compositeNode) Evaluate(entityMask mask.Mask, ctl Controller) bool {
	nodeMask, complete := n.nodeMask(ctl)

	switch n.op {
	case OpAnd:
		// Nothing carries an unregistered component
		if !complete || !entityMask.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(entityMask, ctl) {
				return false
			}
		}
		return true

	case OpOr:
		if entityMask.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(entityMask, ctl) {
				return true
			}
		}
		return false

	case OpNot:
		for _, child := range n.children {
			if child.Evaluate(entityMask, ctl) {
				return false
			}
		}
		return !entityMask.ContainsAny(nodeMask)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	return q.node(OpAnd, items...)
}

func (q *query) Or(items ...interface{}) QueryNode {
	return q.node(OpOr, items...)
}

func (q *query) Not(items ...interface{}) QueryNode {
	return q.node(OpNot, items...)
}

// node builds a composite node; the first node built becomes the query root.
func (q *query) node(op Operation, items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(op, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		case QueryNode:
			children = append(children, v)
		}
	}

	return components, children
}

func (q *query) Evaluate(entityMask mask.Mask, ctl Controller) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(entityMask, ctl)
}
