package autodiff

// Tape holds the nodes of a graph in topological order: every node
// appears after all of its operands, and exactly once.
//
// A tape is built from a root by Record and consumed by Backward. It is a
// snapshot; graphs built after recording are not on it.
//
// Usage:
//
//	tape := autodiff.Record(loss)
//	tape.ZeroGrad()
//	tape.Backward()
type Tape struct {
	nodes []*Value // leaves first, root last
}

// frame is one entry of the explicit depth-first stack.
type frame struct {
	node *Value
	next int // index of the next operand to visit
}

// Record builds the tape for root with an iterative postorder traversal.
//
// Shared operands are recorded once. The explicit stack keeps very deep
// graphs (long chains of operations) off the goroutine stack.
func Record(root *Value) *Tape {
	visited := make(map[*Value]struct{})
	nodes := make([]*Value, 0, 64)

	visited[root] = struct{}{}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.operands) {
			child := top.node.operands[top.next]
			top.next++
			if _, seen := visited[child]; !seen {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		nodes = append(nodes, top.node)
		stack = stack[:len(stack)-1]
	}

	return &Tape{nodes: nodes}
}

// Nodes returns the recorded nodes, leaves first and root last.
func (t *Tape) Nodes() []*Value {
	out := make([]*Value, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Len returns the number of recorded nodes.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Root returns the node the tape was recorded from.
func (t *Tape) Root() *Value {
	return t.nodes[len(t.nodes)-1]
}

// Backward seeds the root gradient with 1 and walks the tape in reverse.
//
// Algorithm:
//  1. root.grad = 1 (dRoot/dRoot)
//  2. Walk nodes from root to leaves
//  3. For each node, push its gradient into its operands with +=
//
// Every consumer of a node sits later on the tape than the node itself,
// so by the time the walk reaches a node its gradient is complete.
// Gradients are not reset; call ZeroGrad first when reusing a graph.
func (t *Tape) Backward() {
	t.Root().grad = 1
	for i := len(t.nodes) - 1; i >= 0; i-- {
		t.nodes[i].backward()
	}
}

// ZeroGrad resets the gradient of every recorded node.
func (t *Tape) ZeroGrad() {
	for _, n := range t.nodes {
		n.grad = 0
	}
}
