package glbackend

import (
	"strings"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/goud-engine/core/internal/engerr"
	"github.com/goud-engine/core/render"
)

// compileStage compiles one shader stage and returns its object id, or a
// ShaderCompileError carrying the info log (grounded on the teacher's
// render/gl/bind.go BindProgram).
func (b *Backend) compileStage(stage uint32, stageName, source string) (uint32, error) {
	id := gl.CreateShader(stage)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteShader(id)
		b.logger.Printf("shader compile failed (%s stage): %s", stageName, log)
		return 0, &engerr.ShaderCompileError{Stage: stageName, Log: log}
	}
	return id, nil
}

// CreateShader compiles and links a vertex/fragment program. Both shader
// objects are detached and deleted before returning, on success and on
// failure alike (spec.md §4.I).
func (b *Backend) CreateShader(vertexSrc, fragmentSrc string) (render.ShaderHandle, error) {
	if vertexSrc == "" || fragmentSrc == "" {
		return render.ShaderHandle{}, &engerr.ShaderCompileError{Stage: "vertex|fragment", Log: "empty shader source"}
	}

	vs, err := b.compileStage(gl.VERTEX_SHADER, "vertex", vertexSrc)
	if err != nil {
		return render.ShaderHandle{}, err
	}
	fs, err := b.compileStage(gl.FRAGMENT_SHADER, "fragment", fragmentSrc)
	if err != nil {
		gl.DeleteShader(vs)
		return render.ShaderHandle{}, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DetachShader(program, vs)
		gl.DetachShader(program, fs)
		gl.DeleteShader(vs)
		gl.DeleteShader(fs)
		gl.DeleteProgram(program)
		b.logger.Printf("shader link failed: %s", log)
		return render.ShaderHandle{}, &engerr.ShaderLinkError{Log: log}
	}

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	h, err := b.shaderAlloc.Allocate()
	if err != nil {
		gl.DeleteProgram(program)
		return render.ShaderHandle{}, &engerr.ShaderLinkError{Log: err.Error()}
	}
	b.shaders[h.Index()] = &shaderMeta{program: program}
	return h, nil
}

func (b *Backend) shaderMetaFor(h render.ShaderHandle) (*shaderMeta, bool) {
	if !b.shaderAlloc.IsAlive(h) {
		return nil, false
	}
	m, ok := b.shaders[h.Index()]
	return m, ok
}

// DestroyShader tears down the program, clears the bound-shader record if
// it referenced h, and deallocates the handle.
func (b *Backend) DestroyShader(h render.ShaderHandle) bool {
	m, ok := b.shaderMetaFor(h)
	if !ok {
		return false
	}
	gl.DeleteProgram(m.program)
	delete(b.shaders, h.Index())
	b.shaderAlloc.Deallocate(h)

	if b.haveShader && b.boundShader == h {
		b.haveShader = false
	}
	return true
}

// IsShaderValid reports whether h currently identifies a live program.
func (b *Backend) IsShaderValid(h render.ShaderHandle) bool {
	_, ok := b.shaderMetaFor(h)
	return ok
}

// BindShader makes h the active program.
func (b *Backend) BindShader(h render.ShaderHandle) error {
	m, ok := b.shaderMetaFor(h)
	if !ok {
		return &engerr.InvalidHandleError{Kind: "shader"}
	}
	gl.UseProgram(m.program)
	b.boundShader = h
	b.haveShader = true
	return nil
}

// UnbindShader clears the active program.
func (b *Backend) UnbindShader() {
	gl.UseProgram(0)
	b.haveShader = false
}

// GetUniformLocation returns the uniform's location, or false if the shader
// is invalid or the uniform does not exist / was optimized out.
func (b *Backend) GetUniformLocation(h render.ShaderHandle, name string) (int32, bool) {
	m, ok := b.shaderMetaFor(h)
	if !ok {
		return 0, false
	}
	loc := gl.GetUniformLocation(m.program, gl.Str(name+"\x00"))
	if loc == -1 {
		return 0, false
	}
	return loc, true
}

// SetUniformInt uploads an int uniform to the currently bound program.
func (b *Backend) SetUniformInt(location int32, v int32) { gl.Uniform1i(location, v) }

// SetUniformFloat uploads a float uniform to the currently bound program.
func (b *Backend) SetUniformFloat(location int32, v float32) { gl.Uniform1f(location, v) }

// SetUniformVec2 uploads a vec2 uniform to the currently bound program.
func (b *Backend) SetUniformVec2(location int32, x, y float32) { gl.Uniform2f(location, x, y) }

// SetUniformVec3 uploads a vec3 uniform to the currently bound program.
func (b *Backend) SetUniformVec3(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

// SetUniformVec4 uploads a vec4 uniform to the currently bound program.
func (b *Backend) SetUniformVec4(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

// SetUniformMat4 uploads a column-major mat4 uniform to the currently
// bound program.
func (b *Backend) SetUniformMat4(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
