package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/agenda/pkg/tracker"
)

var stateDiagram bool

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the internal state of the tracker and its store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tr := openTracker(context.Background())
		defer tr.Close()

		st, ok := tr.State().(tracker.TrackerState)
		if !ok {
			fatal("Failed to read state", fmt.Errorf("unexpected state type %T", tr.State()))
		}

		if stateDiagram {
			config := introspection.DefaultDiagramConfig()
			config.SecondaryID = "agenda"
			config.SecondaryLabel = "Agenda Topology"
			fmt.Println(introspection.TreeDiagram(buildStateTree(st), config))
			return
		}

		out := map[string]any{"tracker": st}
		if intro, ok := tr.Store().(introspection.Introspectable); ok {
			out["store"] = intro.State()
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			fatal("Failed to encode state", err)
		}
	},
}

type stateNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []stateNode
}

// buildStateTree lays the tracker out as a tree; statuses follow introspection.DefaultStyles().
func buildStateTree(st tracker.TrackerState) stateNode {
	rows := make([]stateNode, 0, len(st.Rows))
	for _, c := range tracker.Collections {
		rows = append(rows, stateNode{
			Name:     string(c),
			Status:   "running",
			Metadata: map[string]string{"type": "container", "rows": fmt.Sprintf("%d", st.Rows[string(c)])},
		})
	}

	storeStatus := "suspended"
	if st.Restored || st.Saves > 0 {
		storeStatus = "running"
	}

	return stateNode{
		Name:   "Tracker",
		Status: "running",
		Metadata: map[string]string{
			"type":    "process",
			"key":     st.Key,
			"minutes": fmt.Sprintf("%d", st.TotalMinutes),
		},
		Children: append(rows, stateNode{
			Name:     "Store",
			Status:   storeStatus,
			Metadata: map[string]string{"type": st.StoreType, "saves": fmt.Sprintf("%d", st.Saves)},
		}),
	}
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.Flags().BoolVar(&stateDiagram, "diagram", false, "Print a Mermaid diagram instead of JSON")
}
