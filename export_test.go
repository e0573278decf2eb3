package slist

// Values returns the contents of ls from front to back.
func (ls *List[T]) Values() []T {
	var vals []T
	for cur := ls.head; cur != nil; cur = cur.next {
		vals = append(vals, cur.val)
	}
	return vals
}

// Nodes returns the address of every node in ls from front to back.
// It stops early and reports false if a node is seen twice.
func (ls *List[T]) Nodes() (nodes []any, acyclic bool) {
	seen := make(map[*node[T]]struct{})
	for cur := ls.head; cur != nil; cur = cur.next {
		if _, ok := seen[cur]; ok {
			return nodes, false
		}
		seen[cur] = struct{}{}
		nodes = append(nodes, cur)
	}
	return nodes, true
}
