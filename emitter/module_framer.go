package emitter

import "github.com/viant/jsemit/ast"

// module_framer.go wraps a source file's top-level
// statements in one of four loader envelopes (ES6 passthrough, CommonJS,
// AMD, System) and rewriting import/export statements into the target
// envelope's binding mechanism.

// moduleInfo is the result of a single pre-pass over a file's top-level
// statement list, gathering every import/export-shaped statement so the
// four envelope writers don't each have to re-scan and re-classify.
type moduleInfo struct {
	imports             []*ast.Node // ImportDeclaration nodes, in source order
	exportStarModules   []string    // `export * from "mod"` specifiers
	namedReexports      []namedReexport
	exportedLocalNames  []exportedName // `export` on a local declaration, or `export { a, b }`
	hasDefaultExport    bool
	defaultExportExpr   *ast.Node
	isExportEquals      bool
	exportEqualsExpr    *ast.Node
	body                []*ast.Node // remaining top-level statements, import/export statements stripped
}

type exportedName struct {
	localName    string
	exportedName string
}

type namedReexport struct {
	modulePath   string
	importedName string
	exportedName string
}

// collectModuleInfo classifies every top-level statement once.
func collectModuleInfo(statements []*ast.Node) *moduleInfo {
	info := &moduleInfo{}
	for _, stmt := range statements {
		switch stmt.Kind {
		case ast.KindImportDeclaration:
			info.imports = append(info.imports, stmt)
		case ast.KindExportStar:
			if stmt.ModuleSpecifier != nil {
				info.exportStarModules = append(info.exportStarModules, stmt.ModuleSpecifier.Text)
			}
		case ast.KindExportDeclaration:
			collectExportDeclaration(info, stmt)
		case ast.KindExportAssignment:
			if stmt.Flags.Has(ast.FlagDefault) {
				info.hasDefaultExport = true
				info.defaultExportExpr = stmt.Expression
			} else {
				info.isExportEquals = true
				info.exportEqualsExpr = stmt.Expression
			}
		default:
			registerDeclarationExport(info, stmt)
			info.body = append(info.body, stmt)
		}
	}
	return info
}

func collectExportDeclaration(info *moduleInfo, stmt *ast.Node) {
	modulePath := ""
	if stmt.ModuleSpecifier != nil {
		modulePath = stmt.ModuleSpecifier.Text
	}
	for _, spec := range stmt.Specifiers {
		importedName := spec.Name.Text
		if spec.PropertyName != nil {
			importedName = spec.PropertyName.Text
		}
		exported := spec.Name.Text
		if modulePath != "" {
			info.namedReexports = append(info.namedReexports, namedReexport{
				modulePath:   modulePath,
				importedName: importedName,
				exportedName: exported,
			})
			continue
		}
		info.exportedLocalNames = append(info.exportedLocalNames, exportedName{localName: importedName, exportedName: exported})
	}
}

// registerDeclarationExport notices `export` on a var/function/class
// declaration and records its bound name(s) without otherwise altering the
// statement; the declaration is still emitted verbatim by the statement
// dispatcher.
func registerDeclarationExport(info *moduleInfo, stmt *ast.Node) {
	if !stmt.Flags.Has(ast.FlagExport) {
		return
	}
	if stmt.Flags.Has(ast.FlagDefault) {
		info.hasDefaultExport = true
		info.defaultExportExpr = declaredName(stmt)
		return
	}
	switch stmt.Kind {
	case ast.KindFunctionDeclaration, ast.KindClassDeclaration:
		if stmt.Name != nil {
			info.exportedLocalNames = append(info.exportedLocalNames, exportedName{localName: stmt.Name.Text, exportedName: stmt.Name.Text})
		}
	case ast.KindVariableStatement:
		for _, list := range stmt.DeclarationList {
			for _, decl := range list.DeclarationList {
				if decl.Name != nil && decl.Name.Kind == ast.KindIdentifier {
					info.exportedLocalNames = append(info.exportedLocalNames, exportedName{localName: decl.Name.Text, exportedName: decl.Name.Text})
				}
			}
		}
	}
}

// declaredName returns a reference expression to a function/class
// declaration's bound name, used as the `export default` value when the
// default export is itself a named declaration.
func declaredName(stmt *ast.Node) *ast.Node {
	if stmt.Name == nil {
		return nil
	}
	return syntheticIdentifier(stmt.Name.Text)
}

// EmitModule writes file's complete framed output (imports/exports
// rewritten into ctx.Options.Module's envelope) to ctx.W.
func EmitModule(ctx *Context, statements []*ast.Node) {
	info := collectModuleInfo(statements)
	switch ctx.Options.Module {
	case ast.ModuleCommonJS:
		emitCommonJSModule(ctx, info)
	case ast.ModuleAMD:
		emitAMDModule(ctx, info)
	case ast.ModuleSystem:
		emitSystemModule(ctx, info)
	default:
		emitES6Module(ctx, info, statements)
	}
}
