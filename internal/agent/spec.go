// Package agent runs the planner/controller/generator/verifier roles
// around the verification pipeline. Agents produce free text that is
// recorded in the run artifact; they have no influence on verification or
// release gating.
package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec defines one agent role
type Spec struct {
	Name         string `yaml:"name"`
	Instructions string `yaml:"instructions"`
	Model        string `yaml:"model,omitempty"`
}

// LoadSpec reads an agent spec from a YAML file
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read agent spec: %w", err)
	}

	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Spec{}, fmt.Errorf("parse agent spec %s: %w", path, err)
	}

	s.Name = strings.TrimSpace(s.Name)
	s.Instructions = strings.TrimSpace(s.Instructions)
	s.Model = strings.TrimSpace(s.Model)
	if s.Name == "" || s.Instructions == "" {
		return Spec{}, fmt.Errorf("agent spec missing name/instructions: %s", path)
	}
	return s, nil
}

// LoadSpecOrDefault reads <role>.yaml from dir, falling back to the
// built-in spec when the file does not exist
func LoadSpecOrDefault(dir, role string) (Spec, error) {
	path := filepath.Join(dir, role+".yaml")
	if _, err := os.Stat(path); err != nil {
		if spec, ok := defaultSpecs[role]; ok {
			return spec, nil
		}
		return Spec{}, fmt.Errorf("unknown agent role: %s", role)
	}
	return LoadSpec(path)
}

// Agent roles
const (
	RolePlanner    = "planner"
	RoleController = "controller"
	RoleGenerator  = "generator"
	RoleVerifier   = "verifier"
)

var defaultSpecs = map[string]Spec{
	RolePlanner: {
		Name: "PraxisPlanner",
		Instructions: "You are PraxisPlanner. Convert the plan context into a practical, " +
			"repo-executable implementation roadmap.\n" +
			"1) Produce a 4-8 milestone roadmap.\n" +
			"2) For each milestone: goal, concrete deliverables, acceptance criteria, and risks.\n" +
			"3) Propose an evaluation harness early.\n" +
			"4) Keep changes small and reversible; prefer explicit wiring over magic.\n",
	},
	RoleController: {
		Name: "PraxisController",
		Instructions: "You are PraxisController. You will be given a roadmap from PraxisPlanner " +
			"plus a user goal.\n" +
			"- Choose the single next best small, reversible implementation step.\n" +
			"- Specify exact filenames when edits are needed.\n" +
			"- Provide at most 3 commands to verify progress.\n" +
			"- If something is ambiguous, ask for exactly one diagnostic command.\n",
	},
	RoleGenerator: {
		Name: "PraxisGenerator",
		Instructions: "You are PraxisGenerator. Produce structured claims, not prose.\n" +
			"Each claim must include: id, type (textual or numeric), text, optional value/unit, " +
			"and evidence references when available.\n" +
			"Produce some claims with evidence and some without, so the verification gate is " +
			"exercised. Output claims as JSON.\n",
	},
	RoleVerifier: {
		Name: "PraxisVerifier",
		Instructions: "You are PraxisVerifier. You receive a list of claims and must enforce a " +
			"verification gate:\n" +
			"- Every claim must include explicit evidence references.\n" +
			"- If evidence is missing, mark the claim as FAIL.\n" +
			"- Output JSON: {status: pass|fail|needs_review, summary, checks: [{claim_id, status, reason}]}.\n" +
			"Be strict and do not invent evidence.\n",
	},
}
