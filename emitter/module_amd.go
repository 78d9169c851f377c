package emitter

// module_amd.go: wraps the file in `define(["require","exports",
// ...moduleNames], function(require, exports, ...localNames){ … });`;
// `export =` lowers to `return value;`.
func emitAMDModule(ctx *Context, info *moduleInfo) {
	ctx.W.Write(`define(["require", "exports"`)
	for _, imp := range info.imports {
		ctx.W.Write(", ")
		ctx.W.Write(quoteJSString(imp.ModuleSpecifier.Text))
	}
	ctx.W.Write("], function (require, exports")
	for _, imp := range info.imports {
		ctx.W.Write(", ")
		ctx.W.Write(ctx.Names.GenerateNameForNode(ctx.Resolver, imp))
	}
	ctx.W.Write(") {")
	ctx.W.IncreaseIndent()
	ctx.W.WriteLine()

	ctx.W.Write(`"use strict";`)
	ctx.W.WriteLine()
	if !info.isExportEquals {
		ctx.W.Write(`Object.defineProperty(exports, "__esModule", { value: true });`)
		ctx.W.WriteLine()
	}
	for _, mod := range dedupeModules(info.namedReexports) {
		emitAMDInlineRequire(ctx, mod)
	}
	for _, mod := range info.exportStarModules {
		emitAMDInlineRequire(ctx, mod)
	}

	for _, stmt := range info.body {
		EmitStatement(ctx, stmt)
	}

	if info.isExportEquals {
		ctx.W.Write("return ")
		EmitExpression(ctx, info.exportEqualsExpr)
		ctx.W.Write(";")
		ctx.W.WriteLine()
	} else {
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
			ctx.W.Write("__export(")
			ctx.W.Write(reexportModuleVar(mod))
			ctx.W.Write(", exports);")
			ctx.W.WriteLine()
		}
	}

	ctx.W.DecreaseIndent()
	ctx.W.Write("});")
}

func emitAMDInlineRequire(ctx *Context, modulePath string) {
	ctx.W.Write("var ")
	ctx.W.Write(reexportModuleVar(modulePath))
	ctx.W.Write(" = require(")
	ctx.W.Write(quoteJSString(modulePath))
	ctx.W.Write(");")
	ctx.W.WriteLine()
}
