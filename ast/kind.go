package ast

// Kind tags every node in the tree. The set below is not exhaustive of a
// real checker's ~180 production kinds; it covers the constructs the
// emitter actually dispatches on, plus the token kinds the writer needs
// for punctuation-level source map spans.
type Kind int

const (
	KindUnknown Kind = iota

	// Literals
	KindNumericLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindRegularExpressionLiteral
	KindTemplateLiteral // non-tagged template, top-level
	KindTemplateSpan    // one `${expr}tail` piece inside a template

	// Names
	KindIdentifier
	KindPrivateIdentifier
	KindThisExpression
	KindSuperExpression

	// Expressions
	KindArrayLiteralExpression
	KindObjectLiteralExpression
	KindPropertyAssignment
	KindShorthandPropertyAssignment
	KindSpreadAssignment
	KindComputedPropertyName
	KindPropertyAccessExpression
	KindElementAccessExpression
	KindCallExpression
	KindNewExpression
	KindTaggedTemplateExpression
	KindTypeAssertionExpression
	KindParenthesizedExpression
	KindFunctionExpression
	KindArrowFunction
	KindClassExpression
	KindSpreadElement
	KindUnaryExpression
	KindPrefixUnaryExpression
	KindPostfixUnaryExpression
	KindBinaryExpression
	KindConditionalExpression
	KindAssignmentExpression
	KindCommaListExpression
	KindYieldExpression
	KindAwaitExpression
	KindDecorator

	// Patterns
	KindObjectBindingPattern
	KindArrayBindingPattern
	KindBindingElement
	KindOmittedExpression // elision in an array pattern/literal

	// Statements
	KindBlock
	KindEmptyStatement
	KindExpressionStatement
	KindIfStatement
	KindDoStatement
	KindWhileStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindContinueStatement
	KindBreakStatement
	KindReturnStatement
	KindWithStatement
	KindSwitchStatement
	KindCaseClause
	KindDefaultClause
	KindLabeledStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindDebuggerStatement

	// Declarations
	KindVariableStatement
	KindVariableDeclarationList
	KindVariableDeclaration
	KindFunctionDeclaration
	KindClassDeclaration
	KindClassStaticBlockDeclaration
	KindConstructor
	KindMethodDeclaration
	KindGetAccessor
	KindSetAccessor
	KindPropertyDeclaration
	KindParameter
	KindHeritageClause // extends/implements

	// Modules
	KindSourceFile
	KindImportDeclaration
	KindImportClause
	KindNamedImports
	KindImportSpecifier
	KindNamespaceImport
	KindExportDeclaration
	KindExportAssignment // `export =` or `export default`
	KindNamedExports
	KindExportSpecifier
	KindExportStar

	// Synthesized-only helper markers
	KindSyntheticHelperPrelude
)

// names for diagnostics/tests; not exhaustive, only the kinds above.
var kindNames = map[Kind]string{
	KindUnknown:                      "Unknown",
	KindNumericLiteral:               "NumericLiteral",
	KindStringLiteral:                "StringLiteral",
	KindBooleanLiteral:               "BooleanLiteral",
	KindNullLiteral:                  "NullLiteral",
	KindRegularExpressionLiteral:     "RegularExpressionLiteral",
	KindTemplateLiteral:              "TemplateLiteral",
	KindTemplateSpan:                 "TemplateSpan",
	KindIdentifier:                   "Identifier",
	KindPrivateIdentifier:            "PrivateIdentifier",
	KindThisExpression:               "ThisExpression",
	KindSuperExpression:              "SuperExpression",
	KindArrayLiteralExpression:       "ArrayLiteralExpression",
	KindObjectLiteralExpression:      "ObjectLiteralExpression",
	KindPropertyAssignment:           "PropertyAssignment",
	KindShorthandPropertyAssignment:  "ShorthandPropertyAssignment",
	KindSpreadAssignment:             "SpreadAssignment",
	KindComputedPropertyName:         "ComputedPropertyName",
	KindPropertyAccessExpression:     "PropertyAccessExpression",
	KindElementAccessExpression:      "ElementAccessExpression",
	KindCallExpression:               "CallExpression",
	KindNewExpression:                "NewExpression",
	KindTaggedTemplateExpression:     "TaggedTemplateExpression",
	KindTypeAssertionExpression:      "TypeAssertionExpression",
	KindParenthesizedExpression:      "ParenthesizedExpression",
	KindFunctionExpression:           "FunctionExpression",
	KindArrowFunction:                "ArrowFunction",
	KindClassExpression:              "ClassExpression",
	KindSpreadElement:                "SpreadElement",
	KindUnaryExpression:              "UnaryExpression",
	KindPrefixUnaryExpression:        "PrefixUnaryExpression",
	KindPostfixUnaryExpression:       "PostfixUnaryExpression",
	KindBinaryExpression:             "BinaryExpression",
	KindConditionalExpression:        "ConditionalExpression",
	KindAssignmentExpression:         "AssignmentExpression",
	KindCommaListExpression:          "CommaListExpression",
	KindYieldExpression:              "YieldExpression",
	KindAwaitExpression:              "AwaitExpression",
	KindDecorator:                    "Decorator",
	KindObjectBindingPattern:         "ObjectBindingPattern",
	KindArrayBindingPattern:          "ArrayBindingPattern",
	KindBindingElement:               "BindingElement",
	KindOmittedExpression:            "OmittedExpression",
	KindBlock:                        "Block",
	KindEmptyStatement:               "EmptyStatement",
	KindExpressionStatement:          "ExpressionStatement",
	KindIfStatement:                  "IfStatement",
	KindDoStatement:                  "DoStatement",
	KindWhileStatement:               "WhileStatement",
	KindForStatement:                 "ForStatement",
	KindForInStatement:               "ForInStatement",
	KindForOfStatement:               "ForOfStatement",
	KindContinueStatement:            "ContinueStatement",
	KindBreakStatement:               "BreakStatement",
	KindReturnStatement:              "ReturnStatement",
	KindWithStatement:                "WithStatement",
	KindSwitchStatement:              "SwitchStatement",
	KindCaseClause:                   "CaseClause",
	KindDefaultClause:                "DefaultClause",
	KindLabeledStatement:             "LabeledStatement",
	KindThrowStatement:               "ThrowStatement",
	KindTryStatement:                 "TryStatement",
	KindCatchClause:                  "CatchClause",
	KindDebuggerStatement:            "DebuggerStatement",
	KindVariableStatement:            "VariableStatement",
	KindVariableDeclarationList:      "VariableDeclarationList",
	KindVariableDeclaration:          "VariableDeclaration",
	KindFunctionDeclaration:          "FunctionDeclaration",
	KindClassDeclaration:             "ClassDeclaration",
	KindClassStaticBlockDeclaration:  "ClassStaticBlockDeclaration",
	KindConstructor:                  "Constructor",
	KindMethodDeclaration:            "MethodDeclaration",
	KindGetAccessor:                  "GetAccessor",
	KindSetAccessor:                  "SetAccessor",
	KindPropertyDeclaration:          "PropertyDeclaration",
	KindParameter:                    "Parameter",
	KindHeritageClause:               "HeritageClause",
	KindSourceFile:                   "SourceFile",
	KindImportDeclaration:            "ImportDeclaration",
	KindImportClause:                 "ImportClause",
	KindNamedImports:                 "NamedImports",
	KindImportSpecifier:              "ImportSpecifier",
	KindNamespaceImport:              "NamespaceImport",
	KindExportDeclaration:            "ExportDeclaration",
	KindExportAssignment:             "ExportAssignment",
	KindNamedExports:                 "NamedExports",
	KindExportSpecifier:              "ExportSpecifier",
	KindExportStar:                   "ExportStar",
	KindSyntheticHelperPrelude:       "SyntheticHelperPrelude",
}

// String implements fmt.Stringer for diagnostics and test failure output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
