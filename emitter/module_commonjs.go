package emitter

import "github.com/viant/jsemit/ast"

// module_commonjs.go: imports become `var ns = require("mod")`; `export x`
// becomes `exports.x = x`; `export default` becomes `exports.default =
// …`; `export * from "mod"` uses the generated `__export(m)` helper.
// Identifier references into an imported module are expected to already
// carry their `ns.member` qualification via
// Resolver.GetExpressionNameSubstitution; this framer only establishes
// the `ns` bindings themselves.
func emitCommonJSModule(ctx *Context, info *moduleInfo) {
	ctx.W.Write(`"use strict";`)
	ctx.W.WriteLine()
	if !info.isExportEquals {
		ctx.W.Write(`Object.defineProperty(exports, "__esModule", { value: true });`)
		ctx.W.WriteLine()
	}

	for _, imp := range info.imports {
		emitRequireBinding(ctx, imp)
	}
	for _, mod := range dedupeModules(info.namedReexports) {
		ctx.W.Write("var ")
		ctx.W.Write(reexportModuleVar(mod))
		ctx.W.Write(" = require(")
		ctx.W.Write(quoteJSString(mod))
		ctx.W.Write(");")
		ctx.W.WriteLine()
	}

	for _, stmt := range info.body {
		EmitStatement(ctx, stmt)
	}

	if info.isExportEquals {
		ctx.W.Write("module.exports = ")
		EmitExpression(ctx, info.exportEqualsExpr)
		ctx.W.Write(";")
		ctx.W.WriteLine()
		return
	}

	for _, name := range info.exportedLocalNames {
		ctx.W.Write("exports.")
		ctx.W.Write(name.exportedName)
		ctx.W.Write(" = ")
		ctx.W.Write(name.localName)
		ctx.W.Write(";")
		ctx.W.WriteLine()
	}
	if info.hasDefaultExport {
		ctx.W.Write("exports.default = ")
		EmitExpression(ctx, info.defaultExportExpr)
		ctx.W.Write(";")
		ctx.W.WriteLine()
	}
	for _, re := range info.namedReexports {
		ctx.W.Write("exports.")
		ctx.W.Write(re.exportedName)
		ctx.W.Write(" = ")
		ctx.W.Write(reexportModuleVar(re.modulePath))
		ctx.W.Write(".")
		ctx.W.Write(re.importedName)
		ctx.W.Write(";")
		ctx.W.WriteLine()
	}
	for _, mod := range info.exportStarModules {
		ensureExportStarHelper(ctx)
		ctx.W.Write("__export(require(")
		ctx.W.Write(quoteJSString(mod))
		ctx.W.Write("), exports);")
		ctx.W.WriteLine()
	}
}

func emitRequireBinding(ctx *Context, imp *ast.Node) {
	name := ctx.Names.GenerateNameForNode(ctx.Resolver, imp)
	ctx.W.Write("var ")
	ctx.W.Write(name)
	ctx.W.Write(" = require(")
	ctx.W.Write(quoteJSString(imp.ModuleSpecifier.Text))
	ctx.W.Write(");")
	ctx.W.WriteLine()
}

func dedupeModules(reexports []namedReexport) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range reexports {
		if seen[r.modulePath] {
			continue
		}
		seen[r.modulePath] = true
		out = append(out, r.modulePath)
	}
	return out
}

func reexportModuleVar(modulePath string) string {
	return ast.ModuleNameHint(modulePath) + "_1"
}
