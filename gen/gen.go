// Package gen derives copytext encoder source for struct types.
//
// The encode path in copytext is assembled from explicit Field/Join calls
// and performs no reflection. gen makes that wiring mechanical: it walks a
// struct's fields once, at generation time, and emits the Field/Join chain
// as Go source. A field whose type has no encoder fails the generation run,
// so "no encoder exists for type X" stays a build-time condition.
//
// Type names are rendered the way reflect reports them, package-qualified.
// Run the generator from a program that imports the row type's package and
// write the output into a package that can refer to it the same way.
package gen

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zoobzio/sentinel"
)

// Sentinel errors for generation failures.
var (
	// ErrUnsupportedType indicates a field type with no derivable encoder.
	ErrUnsupportedType = errors.New("no encoder for type")

	// ErrEmptyStruct indicates a struct with no exported fields; no
	// encoder can be derived for it.
	ErrEmptyStruct = errors.New("struct has no encodable fields")
)

// Options configures generated output.
type Options struct {
	// Package is the package clause of the generated file. Defaults to
	// "main".
	Package string

	// Var is the name of the generated encoder variable. Defaults to the
	// type name with a lowered first letter plus "Encoder".
	Var string
}

// Well-known types with dedicated encoders.
var (
	decimalType = reflect.TypeOf(decimal.Decimal{})
	uuidType    = reflect.TypeOf(uuid.UUID{})
	timeType    = reflect.TypeOf(time.Time{})
)

// fieldInfo is one encodable field in declaration order.
type fieldInfo struct {
	name string
	typ  reflect.Type
}

// File generates a complete Go source file declaring the encoder variable
// for struct type T.
func File[T any](opts Options) (string, error) {
	if opts.Package == "" {
		opts.Package = "main"
	}

	md := sentinel.Scan[T]()
	if opts.Var == "" {
		opts.Var = defaultVarName(md.TypeName)
	}

	b := newBuilder()
	expr, err := b.chainExpr(reflect.TypeFor[T](), md, 0)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by copytext/gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", opts.Package)
	sb.WriteString("import (\n")
	for _, path := range b.importPaths() {
		fmt.Fprintf(&sb, "\t%q\n", path)
	}
	sb.WriteString(")\n\n")
	fmt.Fprintf(&sb, "var %s = %s\n", opts.Var, expr)
	return sb.String(), nil
}

// Chain generates only the encoder expression for struct type T, for
// splicing into hand-written source.
func Chain[T any]() (string, error) {
	md := sentinel.Scan[T]()
	b := newBuilder()
	return b.chainExpr(reflect.TypeFor[T](), md, 0)
}

// chainExpr builds the Field/Join chain for the scanned top-level type,
// taking field order from the sentinel metadata.
func (b *builder) chainExpr(t reflect.Type, md sentinel.Metadata, depth int) (string, error) {
	if t.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: %s (not a struct)", ErrUnsupportedType, t)
	}

	fields := make([]fieldInfo, 0, len(md.Fields))
	for _, f := range md.Fields {
		fields = append(fields, fieldInfo{name: f.Name, typ: f.ReflectType})
	}
	return b.structExpr(t, fields, depth)
}

// defaultVarName lowers the first letter of the type name and appends
// "Encoder".
func defaultVarName(typeName string) string {
	if typeName == "" {
		return "rowEncoder"
	}
	return strings.ToLower(typeName[:1]) + typeName[1:] + "Encoder"
}

// builder accumulates import paths while expressions are generated.
type builder struct {
	imports map[string]struct{}
}

func newBuilder() *builder {
	return &builder{imports: map[string]struct{}{
		"github.com/zoobzio/copytext": {},
	}}
}

// importPaths returns the collected import paths in sorted order.
func (b *builder) importPaths() []string {
	paths := make([]string, 0, len(b.imports))
	for path := range b.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// record notes the package of a named type referenced by generated code.
func (b *builder) record(t reflect.Type) {
	if path := t.PkgPath(); path != "" {
		b.imports[path] = struct{}{}
	}
}

// typeExpr returns the encoder expression for t.
func (b *builder) typeExpr(t reflect.Type, depth int) (string, error) {
	switch t {
	case decimalType:
		return "copytext.Numeric", nil
	case uuidType:
		return "copytext.UUID", nil
	case timeType:
		return "copytext.Timestamp", nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return "copytext.Bool", nil
	case reflect.Int:
		return "copytext.Int", nil
	case reflect.Int16:
		return "copytext.Int16", nil
	case reflect.Int32:
		return "copytext.Int32", nil
	case reflect.Int64:
		return "copytext.Int64", nil
	case reflect.Float32:
		return "copytext.Float32", nil
	case reflect.Float64:
		return "copytext.Float64", nil
	case reflect.String:
		return "copytext.String", nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return "copytext.Bytea", nil
		}
		inner, err := b.typeExpr(t.Elem(), depth)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("copytext.Slice(%s)", inner), nil
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Pointer {
			return "", fmt.Errorf("%w: %s (optional of optional)", ErrUnsupportedType, t)
		}
		inner, err := b.typeExpr(t.Elem(), depth)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("copytext.Optional(%s)", inner), nil
	case reflect.Struct:
		fields := make([]fieldInfo, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{name: sf.Name, typ: sf.Type})
		}
		return b.structExpr(t, fields, depth)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// structExpr returns the Field/Join chain for a struct type, fields in
// declaration order. A single-field struct degenerates to the bare field
// expression, mirroring Join.
func (b *builder) structExpr(t reflect.Type, fields []fieldInfo, depth int) (string, error) {
	b.record(t)

	var lines []string
	pad := strings.Repeat("\t", depth+1)
	for _, field := range fields {
		expr, err := b.typeExpr(field.typ, depth+1)
		if err != nil {
			return "", fmt.Errorf("field %s.%s: %w", t.Name(), field.name, err)
		}
		b.recordFieldType(field.typ)
		lines = append(lines, fmt.Sprintf(
			"%scopytext.Field(%s, func(v %s) %s { return v.%s }),",
			pad, expr, t.String(), field.typ.String(), field.name,
		))
	}

	if len(lines) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyStruct, t)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "copytext.Join(\n%s\n%s)",
		strings.Join(lines, "\n"), strings.Repeat("\t", depth))
	return sb.String(), nil
}

// recordFieldType collects imports for the types spelled out in accessor
// signatures.
func (b *builder) recordFieldType(t reflect.Type) {
	switch t.Kind() {
	case reflect.Slice, reflect.Pointer:
		b.recordFieldType(t.Elem())
	default:
		b.record(t)
	}
}
