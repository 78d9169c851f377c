package emitter

import (
	"fmt"

	"github.com/viant/jsemit/ast"
)

// module_system.go: `System.register([...], function(exports_N){ return {
// setters:[…], execute:function(){ … } } });` Each setter writes imported
// bindings into file-local variables declared in a prologue; `execute`
// contains the top-level statements, and every assignment to an exported
// binding is wrapped in `exports_N("name", value)`.
func emitSystemModule(ctx *Context, info *moduleInfo) {
	exportsParam := systemExportsParam(ctx)

	ctx.W.Write("System.register([")
	for i, imp := range info.imports {
		if i > 0 {
			ctx.W.Write(", ")
		}
		ctx.W.Write(quoteJSString(imp.ModuleSpecifier.Text))
	}
	ctx.W.Write("], function (")
	ctx.W.Write(exportsParam)
	ctx.W.Write(") {")
	ctx.W.IncreaseIndent()
	ctx.W.WriteLine()

	localNames := importLocalNames(info.imports)
	if len(localNames) > 0 {
		ctx.W.Write("var ")
		for i, n := range localNames {
			if i > 0 {
				ctx.W.Write(", ")
			}
			ctx.W.Write(n)
		}
		ctx.W.Write(";")
		ctx.W.WriteLine()
	}

	ctx.W.Write("return {")
	ctx.W.IncreaseIndent()
	ctx.W.WriteLine()

	ctx.W.Write("setters: [")
	for i, imp := range info.imports {
		if i > 0 {
			ctx.W.Write(", ")
		}
		emitSystemSetter(ctx, imp)
	}
	ctx.W.Write("],")
	ctx.W.WriteLine()

	ctx.W.Write("execute: function () {")
	ctx.W.IncreaseIndent()
	ctx.W.WriteLine()
	emitSystemExecuteBody(ctx, info, exportsParam)
	ctx.W.DecreaseIndent()
	ctx.W.WriteLine()
	ctx.W.Write("}")

	ctx.W.DecreaseIndent()
	ctx.W.WriteLine()
	ctx.W.Write("};")

	ctx.W.DecreaseIndent()
	ctx.W.WriteLine()
	ctx.W.Write("});")
}

// systemExportsParam names this file's registrar parameter exports_N,
// where N is the file's stable 1-based index in ctx.Project (so a
// multi-file System build gives every file a distinct, stable registrar
// name). Falls back to exports_1 for a standalone file emitted with no
// Project (or one the project doesn't know about).
func systemExportsParam(ctx *Context) string {
	idx := 1
	if ctx.Project != nil && ctx.File != nil {
		if n := ctx.Project.ModuleIndexOf(ctx.File.FileName); n > 0 {
			idx = n
		}
	}
	return fmt.Sprintf("exports_%d", idx)
}

// importLocalNames flattens every default/namespace/named local binding
// introduced by an import declaration, in declaration order.
func importLocalNames(imports []*ast.Node) []string {
	var names []string
	for _, imp := range imports {
		clause := imp.ImportClause
		if clause == nil {
			continue
		}
		if clause.Name != nil {
			names = append(names, clause.Name.Text)
		}
		if nb := clause.NamedBindings; nb != nil {
			if nb.Kind == ast.KindNamespaceImport {
				names = append(names, nb.Name.Text)
				continue
			}
			for _, spec := range nb.Specifiers {
				names = append(names, spec.Name.Text)
			}
		}
	}
	return names
}

// emitSystemSetter writes the one setter function corresponding to a
// single import declaration: `function (v) { localName = v.memberName; }`.
func emitSystemSetter(ctx *Context, imp *ast.Node) {
	ctx.W.Write("function (v) {")
	clause := imp.ImportClause
	if clause != nil {
		if clause.Name != nil {
			ctx.W.Write(" ")
			ctx.W.Write(clause.Name.Text)
			ctx.W.Write(" = v.default;")
		}
		if nb := clause.NamedBindings; nb != nil {
			if nb.Kind == ast.KindNamespaceImport {
				ctx.W.Write(" ")
				ctx.W.Write(nb.Name.Text)
				ctx.W.Write(" = v;")
			} else {
				for _, spec := range nb.Specifiers {
					importedName := spec.Name.Text
					if spec.PropertyName != nil {
						importedName = spec.PropertyName.Text
					}
					ctx.W.Write(" ")
					ctx.W.Write(spec.Name.Text)
					ctx.W.Write(" = v.")
					ctx.W.Write(importedName)
					ctx.W.Write(";")
				}
			}
		}
	}
	ctx.W.Write(" }")
}

// emitSystemExecuteBody writes the registrar's `execute` function contents:
// every top-level statement, with an exported var/function/class
// declaration's binding wrapped in `exports_N("name", value)`.
func emitSystemExecuteBody(ctx *Context, info *moduleInfo, exportsParam string) {
	for _, stmt := range info.body {
		if stmt.Kind == ast.KindVariableStatement && stmt.Flags.Has(ast.FlagExport) {
			emitSystemExportedVariableStatement(ctx, stmt, exportsParam)
			continue
		}
		if (stmt.Kind == ast.KindFunctionDeclaration || stmt.Kind == ast.KindClassDeclaration) && stmt.Flags.Has(ast.FlagExport) {
			EmitStatement(ctx, stmt)
			ctx.W.Write(exportsParam)
			ctx.W.Write("(")
			ctx.W.Write(quoteJSString(stmt.Name.Text))
			ctx.W.Write(", ")
			ctx.W.Write(stmt.Name.Text)
			ctx.W.Write(");")
			ctx.W.WriteLine()
			continue
		}
		EmitStatement(ctx, stmt)
	}
	if info.hasDefaultExport {
		ctx.W.Write(exportsParam)
		ctx.W.Write(`("default", `)
		EmitExpression(ctx, info.defaultExportExpr)
		ctx.W.Write(");")
		ctx.W.WriteLine()
	}
}

func emitSystemExportedVariableStatement(ctx *Context, stmt *ast.Node, exportsParam string) {
	for _, list := range stmt.DeclarationList {
		for _, decl := range list.DeclarationList {
			if decl.Name == nil || decl.Name.Kind != ast.KindIdentifier {
				continue
			}
			ctx.W.Write(exportsParam)
			ctx.W.Write("(")
			ctx.W.Write(quoteJSString(decl.Name.Text))
			ctx.W.Write(", ")
			ctx.W.Write(decl.Name.Text)
			if decl.Initializer != nil {
				ctx.W.Write(" = ")
				EmitExpression(ctx, decl.Initializer)
			}
			ctx.W.Write(");")
			ctx.W.WriteLine()
		}
	}
}
