package analyze

import (
	"fmt"
	"go/constant"
	"go/types"
	"reflect"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"mock-factory/descriptor"
)

// LoadMode specifies what information to load from packages. NeedSyntax
// makes the requested packages type-check from source, so constant
// positions follow declaration order for enum unions.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and builds descriptors for their named types.
type Analyzer struct {
	graph *TypeGraph
	log   *zap.Logger

	named    map[*types.Named]*descriptor.Type // Cache to handle recursive types
	building map[*types.Named]bool             // Named types whose descriptor is still being filled
	enums    map[*types.TypeName][]any         // Constant values of named basic types
}

// NewAnalyzer creates a new Analyzer. A nil logger discards logs.
func NewAnalyzer(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyzer{
		graph:    NewTypeGraph(),
		log:      log,
		named:    make(map[*types.Named]*descriptor.Type),
		building: make(map[*types.Named]bool),
		enums:    make(map[*types.TypeName][]any),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "mock-factory/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.collectEnums(pkg.Types)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
		a.log.Debug("package analyzed",
			zap.String("package", pkg.PkgPath),
			zap.Int("types", len(a.graph.Packages[pkg.PkgPath].Types)))
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// collectEnums records, in declaration order, the constants declared for
// every named type of the package.
func (a *Analyzer) collectEnums(pkg *types.Package) {
	scope := pkg.Scope()

	var consts []*types.Const
	for _, name := range scope.Names() {
		if c, ok := scope.Lookup(name).(*types.Const); ok {
			consts = append(consts, c)
		}
	}

	sort.SliceStable(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })

	for _, c := range consts {
		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}

		obj := named.Obj()
		a.enums[obj] = append(a.enums[obj], constValue(c.Val()))
	}
}

// processPackage extracts descriptors of the exported named types of a package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		a.graph.Types[typeID] = a.analyzeType(typeName.Type())
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// analyzeType recursively converts a go/types.Type into a descriptor.
func (a *Analyzer) analyzeType(t types.Type) *descriptor.Type {
	switch tt := t.(type) {
	case *types.Named:
		return a.analyzeNamedType(tt)

	case *types.Alias:
		return a.analyzeType(types.Unalias(tt))

	case *types.Basic:
		return analyzeBasic(tt)

	case *types.Pointer:
		return descriptor.Nullable(a.analyzeType(tt.Elem()))

	case *types.Slice:
		return descriptor.Array(a.analyzeType(tt.Elem()))

	case *types.Array:
		// fixed arrays route through the read-only array generator
		return descriptor.Apply(string(descriptor.CategoryReadOnlyArray), a.analyzeType(tt.Elem()))

	case *types.Struct:
		return a.analyzeStruct(tt)

	case *types.Signature:
		return descriptor.Function()

	case *types.Interface, *types.Map:
		return descriptor.Any()

	case *types.Chan:
		return descriptor.Of(CategoryChan)

	default:
		return descriptor.Of(descriptor.Category(fmt.Sprintf("%T", t)))
	}
}

// analyzeNamedType converts a named type into a TypeAlias over its
// underlying shape. References to a named type still being converted
// become deferred nodes.
func (a *Analyzer) analyzeNamedType(named *types.Named) *descriptor.Type {
	if cached, ok := a.named[named]; ok {
		if a.building[named] {
			return descriptor.Deferred(cached.Name, func() *descriptor.Type { return cached })
		}

		return cached
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		// predeclared, e.g. error
		return a.analyzeType(named.Underlying())
	}

	switch obj.Pkg().Path() + "." + obj.Name() {
	case "time.Time":
		return descriptor.Date()
	case "time.Duration":
		return descriptor.Number()
	}

	if named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0 {
		return descriptor.ParameterizedAlias(obj.Name())
	}

	info := descriptor.Alias(types.TypeString(named, types.RelativeTo(obj.Pkg())), nil)

	// Pre-cache to handle recursive types (we'll fill in details)
	a.named[named] = info
	a.building[named] = true
	defer delete(a.building, named)

	if values := a.enums[named.Origin().Obj()]; len(values) > 0 {
		if _, ok := named.Underlying().(*types.Basic); ok {
			info.Target = descriptor.UnionOf(values...)
			return info
		}
	}

	info.Target = a.analyzeType(named.Underlying())

	return info
}

// analyzeStruct converts the exported fields of a struct into properties.
func (a *Analyzer) analyzeStruct(st *types.Struct) *descriptor.Type {
	obj := descriptor.Object()

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		key, ok := PropertyKey(field.Name(), reflect.StructTag(st.Tag(i)))
		if !ok {
			continue
		}

		obj.Properties = append(obj.Properties, descriptor.Field(key, a.analyzeType(field.Type())))
	}

	return obj
}

func analyzeBasic(b *types.Basic) *descriptor.Type {
	info := b.Info()

	switch {
	case info&types.IsString != 0:
		return descriptor.String()
	case info&types.IsBoolean != 0:
		return descriptor.Boolean()
	case info&types.IsNumeric != 0:
		return descriptor.Number()
	case b.Kind() == types.UntypedNil:
		return descriptor.Void()
	default:
		// unsafe.Pointer
		return descriptor.Any()
	}
}

// constValue converts a constant into the Go value used as a union literal.
func constValue(v constant.Value) any {
	switch v.Kind() {
	case constant.String:
		return constant.StringVal(v)
	case constant.Bool:
		return constant.BoolVal(v)
	case constant.Int:
		if i, ok := constant.Int64Val(v); ok {
			return int(i)
		}
		f, _ := constant.Float64Val(v)
		return f
	case constant.Float:
		f, _ := constant.Float64Val(v)
		return f
	default:
		return v.ExactString()
	}
}
