package pack

import "fmt"

// Scene is the typed view of a packed sequence, for renderers running in the
// same process.
type Scene struct {
	Width  int
	Height int
	Camera [3]float64
	FOV    float64
	Models []Model
}

// Model is one unpacked model group.
type Model struct {
	Filename string
	Position [3]float64
	Rotation [3]float64
	Flip     [3]bool
}

// Unpack checks the layout of args and returns its typed view.
func Unpack(args Args) (Scene, error) {
	count := args.Models()
	if count < 0 {
		return Scene{}, fmt.Errorf("%w: length %d", ErrMalformedArgs, len(args))
	}
	r := reader{args: args}
	out := Scene{
		Width:  r.int(),
		Height: r.int(),
		Camera: [3]float64{r.float(), r.float(), r.float()},
		FOV:    r.float(),
		Models: make([]Model, 0, count),
	}
	for i := 0; i < count; i++ {
		out.Models = append(out.Models, Model{
			Filename: r.string(),
			Position: [3]float64{r.float(), r.float(), r.float()},
			Rotation: [3]float64{r.float(), r.float(), r.float()},
			Flip:     [3]bool{r.bool(), r.bool(), r.bool()},
		})
	}
	if r.err != nil {
		return Scene{}, r.err
	}
	return out, nil
}

type reader struct {
	args Args
	pos  int
	err  error
}

func (r *reader) next() any {
	v := r.args[r.pos]
	r.pos++
	return v
}

func (r *reader) fail(kind string, v any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: position %d: want %s, got %T", ErrMalformedArgs, r.pos-1, kind, v)
	}
}

func (r *reader) int() int {
	v := r.next()
	n, ok := v.(int)
	if !ok {
		r.fail("int", v)
	}
	return n
}

func (r *reader) float() float64 {
	v := r.next()
	f, ok := v.(float64)
	if !ok {
		r.fail("float64", v)
	}
	return f
}

func (r *reader) string() string {
	v := r.next()
	s, ok := v.(string)
	if !ok {
		r.fail("string", v)
	}
	return s
}

func (r *reader) bool() bool {
	v := r.next()
	b, ok := v.(bool)
	if !ok {
		r.fail("bool", v)
	}
	return b
}
