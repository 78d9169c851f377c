// Package astedit provides CRUD-style editing of statement and member
// lists: insert, remove and replace by index, plus linear find-by-predicate.
// It lets lowering rules splice synthesized declarations (hoisted vars,
// synthesized constructors, helper calls) into a tree without each rule
// reimplementing slice-splice bookkeeping and Parent maintenance.
package astedit

import (
	"fmt"

	"github.com/viant/jsemit/ast"
)

// InsertStatement splices stmt into block.Statements at index, the way
// coder.Coder.CreateFile splices a new graph.File into a package's FileSet.
// block must be a node with a Statements list (Block, SourceFile, or a
// switch case/default clause).
func InsertStatement(block *ast.Node, index int, stmt *ast.Node) error {
	if block == nil {
		return fmt.Errorf("astedit: nil block")
	}
	if index < 0 || index > len(block.Statements) {
		return fmt.Errorf("astedit: index %d out of range for %d statements", index, len(block.Statements))
	}
	stmt.Parent = block
	block.Statements = append(block.Statements, nil)
	copy(block.Statements[index+1:], block.Statements[index:])
	block.Statements[index] = stmt
	return nil
}

// PrependStatement inserts stmt as block's first statement.
func PrependStatement(block *ast.Node, stmt *ast.Node) error {
	return InsertStatement(block, 0, stmt)
}

// AppendStatement inserts stmt as block's last statement.
func AppendStatement(block *ast.Node, stmt *ast.Node) error {
	return InsertStatement(block, len(block.Statements), stmt)
}

// RemoveStatement removes the statement at index from block, mirroring
// coder.Coder.RemoveFile's find-index-then-splice shape.
func RemoveStatement(block *ast.Node, index int) error {
	if block == nil {
		return fmt.Errorf("astedit: nil block")
	}
	if index < 0 || index >= len(block.Statements) {
		return fmt.Errorf("astedit: index %d out of range for %d statements", index, len(block.Statements))
	}
	block.Statements = append(block.Statements[:index], block.Statements[index+1:]...)
	return nil
}

// ReplaceStatement swaps the statement at index for replacement.
func ReplaceStatement(block *ast.Node, index int, replacement *ast.Node) error {
	if block == nil {
		return fmt.Errorf("astedit: nil block")
	}
	if index < 0 || index >= len(block.Statements) {
		return fmt.Errorf("astedit: index %d out of range for %d statements", index, len(block.Statements))
	}
	replacement.Parent = block
	block.Statements[index] = replacement
	return nil
}

// FindStatementIndex returns the index of the first statement in block
// satisfying match, or -1 if none does.
func FindStatementIndex(block *ast.Node, match func(*ast.Node) bool) int {
	if block == nil {
		return -1
	}
	for i, stmt := range block.Statements {
		if match(stmt) {
			return i
		}
	}
	return -1
}

// InsertMember splices member into the Members list of a class-shaped
// node at index.
func InsertMember(class *ast.Node, index int, member *ast.Node) error {
	if class == nil {
		return fmt.Errorf("astedit: nil class node")
	}
	if index < 0 || index > len(class.Members) {
		return fmt.Errorf("astedit: index %d out of range for %d members", index, len(class.Members))
	}
	member.Parent = class
	class.Members = append(class.Members, nil)
	copy(class.Members[index+1:], class.Members[index:])
	class.Members[index] = member
	return nil
}

// AppendMember inserts member as class's last member.
func AppendMember(class *ast.Node, member *ast.Node) error {
	return InsertMember(class, len(class.Members), member)
}

// RemoveMember removes the member at index from class.
func RemoveMember(class *ast.Node, index int) error {
	if class == nil {
		return fmt.Errorf("astedit: nil class node")
	}
	if index < 0 || index >= len(class.Members) {
		return fmt.Errorf("astedit: index %d out of range for %d members", index, len(class.Members))
	}
	class.Members = append(class.Members[:index], class.Members[index+1:]...)
	return nil
}

// FindMemberIndex returns the index of the first member in class
// satisfying match, or -1 if none does.
func FindMemberIndex(class *ast.Node, match func(*ast.Node) bool) int {
	if class == nil {
		return -1
	}
	for i, member := range class.Members {
		if match(member) {
			return i
		}
	}
	return -1
}

// HasMemberNamed reports whether class already declares a member whose
// Name.Text equals name, so a synthesized member (e.g. an implicit
// constructor) is never injected twice.
func HasMemberNamed(class *ast.Node, name string) bool {
	return FindMemberIndex(class, func(m *ast.Node) bool {
		return m.Name != nil && m.Name.Text == name
	}) >= 0
}
