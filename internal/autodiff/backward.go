package autodiff

// Backward computes the gradient of v with respect to every node reachable from v.
//
// After the call v.Grad() is 1 and each ancestor's Grad() holds dv/dnode
// added on top of whatever it held before. Reset gradients between
// passes with ZeroGrad (per node or per unit) or ZeroGradGraph.
//
// Example:
//
//	a := autodiff.New(3)
//	b := a.Add(a)
//	b.Backward()
//	a.Grad() // 2
func (v *Value) Backward() {
	Record(v).Backward()
}

// TopologicalOrder returns every node reachable from v, leaves first and v last.
func (v *Value) TopologicalOrder() []*Value {
	return Record(v).nodes
}

// ZeroGradGraph resets the gradient of root and every node reachable from it.
func ZeroGradGraph(root *Value) {
	Record(root).ZeroGrad()
}
