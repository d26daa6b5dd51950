// pre_processor.go implements the WGSL shader pre-processor. It replaces @oxy: annotations
// with the embedded struct sources of the engine's GPU types or generated bind group
// declarations, and collects the declarations for bind group layout construction.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-view/engine/camera"
	"github.com/Carmen-Shannon/oxy-view/engine/model"
)

// registryEntry pairs an embedded WGSL struct source with its type name.
type registryEntry struct {
	Source string
	Type   string
}

type preProcessor struct {
	structRegistry       map[AnnotationArg]registryEntry
	addressSpaceRegistry map[AnnotationArg]string
	declarations         []Annotation
}

// PreProcessor processes WGSL source containing @oxy: annotations.
type PreProcessor interface {
	// Process replaces every annotation in source with its WGSL output. Include annotations
	// inject a struct at most once, however often they repeat.
	//
	// Parameters:
	//   - source: the raw WGSL shader source
	//
	// Returns:
	//   - string: the processed WGSL source
	//   - error: error if an annotation is malformed or a binding is declared twice
	Process(source string) (string, error)

	// Declarations returns the group annotations collected by the last Process call, in source order.
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the camera and vertex structs registered.
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgCamera: {Source: camera.GPUCameraUniformSource, Type: "CameraUniform"},
			AnnotationArgVertex: {Source: model.GPUVertexSource, Type: "VertexInput"},
		},
		addressSpaceRegistry: map[AnnotationArg]string{
			annotationArgStorageTypeUniform:   "var<uniform>",
			annotationArgStorageTypeRead:      "var<storage, read>",
			annotationArgStorageTypeReadWrite: "var<storage, read_write>",
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]
	included := make(map[AnnotationArg]bool)
	bound := make(map[[2]int]int)

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			if included[a.Args[0]] {
				continue
			}
			included[a.Args[0]] = true
			out = append(out, strings.TrimRight(p.structRegistry[a.Args[0]].Source, "\n"))
		case AnnotationTypeBindingGroup:
			slot := [2]int{*a.Group, *a.Binding}
			if prev, ok := bound[slot]; ok {
				return "", fmt.Errorf("line %d: @group(%d) @binding(%d) already declared on line %d", a.Line, slot[0], slot[1], prev)
			}
			bound[slot] = a.Line

			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;",
				*a.Group, *a.Binding, p.addressSpaceRegistry[a.Args[0]], a.Args[1], p.structRegistry[a.Args[2]].Type))
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}

// Find returns the first declaration binding the given struct type.
//
// Parameters:
//   - decls: declarations returned by Declarations
//   - structType: the struct type key to look for
//
// Returns:
//   - Annotation: the matching declaration
//   - bool: false if no declaration binds the struct type
func Find(decls []Annotation, structType AnnotationArg) (Annotation, bool) {
	for _, d := range decls {
		if d.Type == AnnotationTypeBindingGroup && d.Args[2] == structType {
			return d, true
		}
	}
	return Annotation{}, false
}
