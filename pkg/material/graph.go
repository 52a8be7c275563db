package material

import (
	"errors"
	"fmt"
)

// NodeType is a backend shader node identifier
type NodeType string

const (
	NodeOutputMaterial NodeType = "ShaderNodeOutputMaterial"
	NodeOutputWorld    NodeType = "ShaderNodeOutputWorld"
	NodePrincipled     NodeType = "ShaderNodeBsdfPrincipled"
	NodeEmission       NodeType = "ShaderNodeEmission"
	NodeVolumeScatter  NodeType = "ShaderNodeVolumeScatter"
	NodeBackground     NodeType = "ShaderNodeBackground"
	NodeNoise          NodeType = "ShaderNodeTexNoise"
	NodeColorRamp      NodeType = "ShaderNodeValToRGB"
	NodeBump           NodeType = "ShaderNodeBump"
	NodeTexCoord       NodeType = "ShaderNodeTexCoord"
	NodeMixRGB         NodeType = "ShaderNodeMixRGB"
)

// needsConsumer lists node types that are useless unless something reads them
var needsConsumer = map[NodeType]bool{
	NodeNoise:     true,
	NodeColorRamp: true,
	NodeBump:      true,
}

// Node is one shader node with its unlinked input values
type Node struct {
	Name     string                 `json:"name" yaml:"name"`
	Type     NodeType               `json:"type" yaml:"type"`
	Location [2]float64             `json:"location" yaml:"location,flow"` // node editor position
	Inputs   map[string]interface{} `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Ramp     []RampStop             `json:"ramp,omitempty" yaml:"ramp,omitempty"`
}

// Link connects an output socket of one node to an input socket of another
type Link struct {
	FromNode   string `json:"from_node" yaml:"from_node"`
	FromSocket string `json:"from_socket" yaml:"from_socket"`
	ToNode     string `json:"to_node" yaml:"to_node"`
	ToSocket   string `json:"to_socket" yaml:"to_socket"`
}

// Graph is a shader node graph
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`
}

// AddNode appends a node at the given editor location and returns its name
func (g *Graph) AddNode(name string, nodeType NodeType, x, y float64) string {
	g.Nodes = append(g.Nodes, Node{
		Name:     name,
		Type:     nodeType,
		Location: [2]float64{x, y},
		Inputs:   map[string]interface{}{},
	})
	return name
}

// Node returns a pointer to the named node, or nil
func (g *Graph) Node(name string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].Name == name {
			return &g.Nodes[i]
		}
	}
	return nil
}

// Set assigns an input value on the named node
func (g *Graph) Set(node, socket string, value interface{}) {
	if n := g.Node(node); n != nil {
		n.Inputs[socket] = value
	}
}

// Connect links fromNode.fromSocket to toNode.toSocket
func (g *Graph) Connect(fromNode, fromSocket, toNode, toSocket string) {
	g.Links = append(g.Links, Link{
		FromNode:   fromNode,
		FromSocket: fromSocket,
		ToNode:     toNode,
		ToSocket:   toSocket,
	})
}

// Validate checks that every link refers to existing nodes and that every
// noise, colour ramp and bump node feeds at least one other node
func (g *Graph) Validate() error {
	var errs []error

	names := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if names[n.Name] {
			errs = append(errs, fmt.Errorf("duplicate node %q", n.Name))
		}
		names[n.Name] = true
	}

	consumed := make(map[string]bool)
	for _, l := range g.Links {
		if !names[l.FromNode] {
			errs = append(errs, fmt.Errorf("link from unknown node %q", l.FromNode))
		}
		if !names[l.ToNode] {
			errs = append(errs, fmt.Errorf("link to unknown node %q", l.ToNode))
		}
		consumed[l.FromNode] = true
	}

	for _, n := range g.Nodes {
		if needsConsumer[n.Type] && !consumed[n.Name] {
			errs = append(errs, fmt.Errorf("%s node %q has no outgoing link", n.Type, n.Name))
		}
	}

	return errors.Join(errs...)
}
