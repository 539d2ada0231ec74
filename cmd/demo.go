package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lockmeow/lockmeow/internal/bst"
	"github.com/lockmeow/lockmeow/internal/graph"
	"github.com/lockmeow/lockmeow/internal/hashtable"
	"github.com/lockmeow/lockmeow/internal/stack"
)

var demoCmd = &cobra.Command{
	Use:         "demo",
	Short:       "Walk through the stack, tree, graph and hash table",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipCatalog: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(w io.Writer) error {
	for _, section := range []func(io.Writer) error{demoStack, demoTree, demoGraph, demoHashTable} {
		if err := section(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

func demoStack(w io.Writer) error {
	fmt.Fprintln(w, "== stack (LIFO) ==")
	s := stack.New[string]()
	for _, v := range []string{"first", "second", "third"} {
		s.Push(v)
	}
	fmt.Fprintf(w, "after push: %v (len %d)\n", s.Snapshot(), s.Len())
	top, err := s.Peek()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "peek: %s\n", top)
	for i := 0; i < 2; i++ {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "pop: %s\n", v)
	}
	fmt.Fprintf(w, "after pop: %v, empty: %t\n", s.Snapshot(), s.IsEmpty())
	return nil
}

func demoTree(w io.Writer) error {
	fmt.Fprintln(w, "== binary search tree ==")
	t := bst.NewOrdered[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		t.Insert(v)
	}
	fmt.Fprintf(w, "height: %d\n", t.Height())
	fmt.Fprintf(w, "in-order:   %v\n", t.InOrder())
	fmt.Fprintf(w, "pre-order:  %v\n", t.PreOrder())
	fmt.Fprintf(w, "post-order: %v\n", t.PostOrder())
	fmt.Fprintf(w, "contains 40: %t, contains 90: %t\n", t.Search(40), t.Search(90))
	t.Delete(30)
	fmt.Fprintf(w, "after delete 30: %v\n", t.InOrder())
	return nil
}

func demoGraph(w io.Writer) error {
	fmt.Fprintln(w, "== undirected graph ==")
	g := graph.New[string](false)
	for _, v := range []string{"A", "B", "C", "D"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "D")
	g.AddEdge("D", "A")
	for _, v := range g.Vertices() {
		fmt.Fprintf(w, "%s -> %v\n", v, g.Neighbors(v))
	}
	fmt.Fprintf(w, "edge A-B: %t\n", g.HasEdge("A", "B"))
	fmt.Fprintf(w, "dfs from A: %v\n", g.DepthFirstSearch("A"))
	fmt.Fprintf(w, "bfs from A: %v\n", g.BreadthFirstSearch("A"))
	fmt.Fprintf(w, "cyclic: %t, vertices: %d, edges: %d\n", g.HasCycle(), g.VertexCount(), g.EdgeCount())
	return nil
}

func demoHashTable(w io.Writer) error {
	fmt.Fprintln(w, "== hash table ==")
	h := hashtable.NewString[int]()
	fruit := []struct {
		name  string
		count int
	}{{"apple", 5}, {"banana", 3}, {"orange", 8}, {"grape", 12}, {"pear", 6}}
	for _, f := range fruit {
		h.Put(f.name, f.count)
	}
	fmt.Fprintf(w, "size: %d, capacity: %d, load factor: %.4f\n", h.Len(), h.Cap(), h.LoadFactor())

	apple, _ := h.Get("apple")
	_, kiwi := h.Get("kiwi")
	fmt.Fprintf(w, "apple: %d, has kiwi: %t\n", apple, kiwi)
	fmt.Fprintf(w, "has key banana: %t, has value 8: %t\n",
		h.ContainsKey("banana"), h.ContainsValue(8, func(a, b int) bool { return a == b }))

	h.Put("apple", 10)
	apple, _ = h.Get("apple")
	fmt.Fprintf(w, "apple after update: %d\n", apple)
	if v, ok := h.Remove("banana"); ok {
		fmt.Fprintf(w, "removed banana (%d), size now %d\n", v, h.Len())
	}

	bs := h.BucketStats()
	fmt.Fprintf(w, "buckets: %d empty, longest chain %d\n", bs.Empty, bs.Longest)
	return nil
}
