package emitter

import "github.com/viant/jsemit/ast"

// helpers.go holds the runtime helper snippets for `__extends`,
// `__decorate`, `__param`,
// `__metadata`, `__export`. Each is emitted at most once per output file,
// tracked via Context.helpers, and written immediately before the first
// construct that needs it (this emitter has no separate pre-pass collecting
// helper usage up front, so "inject once at the top of the file" becomes
// "inject once, the first time it's needed" — an equivalent one-per-file
// guarantee without a second traversal).

const extendsHelperText = `var __extends = (this && this.__extends) || (function () {
    var extendStatics = function (d, b) {
        extendStatics = Object.setPrototypeOf ||
            ({ __proto__: [] } instanceof Array && function (d, b) { d.__proto__ = b; }) ||
            function (d, b) { for (var p in b) if (Object.prototype.hasOwnProperty.call(b, p)) d[p] = b[p]; };
        return extendStatics(d, b);
    };
    return function (d, b) {
        if (typeof b !== "function" && b !== null)
            throw new TypeError("Class extends value " + String(b) + " is not a constructor or null");
        extendStatics(d, b);
        function __() { this.constructor = d; }
        d.prototype = b === null ? Object.create(b) : (__.prototype = b.prototype, new __);
    };
});`

const decorateHelperText = `var __decorate = (this && this.__decorate) || function (decorators, target, key, desc) {
    var c = arguments.length, r = c < 3 ? target : desc === null ? desc = Object.getOwnPropertyDescriptor(target, key) : desc, d;
    for (var i = decorators.length - 1; i >= 0; i--) if (d = decorators[i]) r = (c < 3 ? d(r) : c > 3 ? d(target, key, r) : d(target, key)) || r;
    return c > 3 && r && Object.defineProperty(target, key, r), r;
};`

const paramHelperText = `var __param = (this && this.__param) || function (paramIndex, decorator) {
    return function (target, key) { decorator(target, key, paramIndex); }
};`

const metadataHelperText = `var __metadata = (this && this.__metadata) || function (metadataKey, metadataValue) {
    if (typeof Reflect === "object" && typeof Reflect.metadata === "function") return Reflect.metadata(metadataKey, metadataValue);
};`

const exportStarHelperText = `var __export = (this && this.__export) || function (m, exports) {
    for (var p in m) if (p !== "default" && !Object.prototype.hasOwnProperty.call(exports, p)) exports[p] = m[p];
};`

func ensureExtendsHelper(ctx *Context) {
	if ctx.helpers.extends {
		return
	}
	ctx.helpers.extends = true
	ctx.W.Write(extendsHelperText)
	ctx.W.WriteLine()
}

func ensureDecorateHelper(ctx *Context) {
	if ctx.helpers.decorate {
		return
	}
	ctx.helpers.decorate = true
	ctx.W.Write(decorateHelperText)
	ctx.W.WriteLine()
}

func ensureParamHelper(ctx *Context) {
	if ctx.helpers.param {
		return
	}
	ctx.helpers.param = true
	ctx.W.Write(paramHelperText)
	ctx.W.WriteLine()
}

func ensureMetadataHelper(ctx *Context) {
	if ctx.helpers.metadata {
		return
	}
	ctx.helpers.metadata = true
	ctx.W.Write(metadataHelperText)
	ctx.W.WriteLine()
}

func ensureExportStarHelper(ctx *Context) {
	if ctx.helpers.export {
		return
	}
	ctx.helpers.export = true
	ctx.W.Write(exportStarHelperText)
	ctx.W.WriteLine()
}

// hasDecorators reports whether node or any of its members/parameters carry
// decorators, which forces `__decorate`/`__param`/`__metadata` injection.
func hasDecorators(node *ast.Node) bool {
	if len(node.Decorators) > 0 {
		return true
	}
	for _, m := range node.Members {
		if len(m.Decorators) > 0 {
			return true
		}
		for _, p := range m.Parameters {
			if len(p.Decorators) > 0 {
				return true
			}
		}
	}
	return false
}
