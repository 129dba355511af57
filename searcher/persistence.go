package searcher

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"connectfour/game"

	"github.com/rs/zerolog/log"
)

// Snapshots carry no parent pointers; links are rebuilt on load so the
// encoder never walks a cycle.
type nodeSnapshot struct {
	State    game.State
	Player   game.Player
	Move     int
	Visits   int
	Score    float64
	Children []*nodeSnapshot
}

type treeSnapshot struct {
	Rows    int
	Columns int
	Root    *nodeSnapshot
}

func init() {
	gob.Register(game.GameState{})
}

// SaveTree persists the whole tree containing node, climbing first to its
// topmost ancestor so no statistics are lost.
func SaveTree(path string, node *Node) error {
	root := node
	for root.parent != nil {
		root = root.parent
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create tree directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tree file %s: %w", path, err)
	}
	defer file.Close()

	snapshot := treeSnapshot{
		Rows:    game.Rows,
		Columns: game.Columns,
		Root:    snapshotNode(root),
	}
	if err := gob.NewEncoder(file).Encode(&snapshot); err != nil {
		return fmt.Errorf("failed to encode tree %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("nodes", countNodes(snapshot.Root)).Msg("stored search tree")
	return nil
}

// LoadTree restores a persisted tree and returns its root. A missing file
// is not an error; it returns a nil root.
func LoadTree(path string) (*Node, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("path", path).Msg("no persisted search tree")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open tree file %s: %w", path, err)
	}
	defer file.Close()

	var snapshot treeSnapshot
	if err := gob.NewDecoder(file).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode tree %s: %w", path, err)
	}
	if snapshot.Rows != game.Rows || snapshot.Columns != game.Columns {
		return nil, fmt.Errorf("persisted tree board %dx%d does not match current board %dx%d",
			snapshot.Rows, snapshot.Columns, game.Rows, game.Columns)
	}

	root := restoreNode(snapshot.Root, nil)
	log.Info().Str("path", path).Int("nodes", countNodes(snapshot.Root)).Msg("restored search tree")
	return root, nil
}

func snapshotNode(node *Node) *nodeSnapshot {
	snapshot := &nodeSnapshot{
		State:    node.state,
		Player:   node.player,
		Move:     node.move,
		Visits:   node.visits,
		Score:    node.score,
		Children: make([]*nodeSnapshot, 0, len(node.children)),
	}
	for _, child := range node.children {
		snapshot.Children = append(snapshot.Children, snapshotNode(child))
	}
	return snapshot
}

func restoreNode(snapshot *nodeSnapshot, parent *Node) *Node {
	node := &Node{
		state:  snapshot.State,
		player: snapshot.Player,
		move:   snapshot.Move,
		visits: snapshot.Visits,
		score:  snapshot.Score,
		parent: parent,
	}
	node.children = make([]*Node, 0, len(snapshot.Children))
	for _, child := range snapshot.Children {
		node.children = append(node.children, restoreNode(child, node))
	}
	return node
}

func countNodes(snapshot *nodeSnapshot) int {
	count := 1
	for _, child := range snapshot.Children {
		count += countNodes(child)
	}
	return count
}
