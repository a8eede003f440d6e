// Package scripting bridges the engine into Lua. Scripts build entity
// trees declaratively (yaml-shaped nested tables handed to
// df.materialize) or imperatively through df.create/df.add, then call
// df.flush to reconcile the host tree.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/domforge/domforge/internal/component"
	"github.com/domforge/domforge/internal/core/ecs"
	"github.com/domforge/domforge/internal/scene"
)

// Engine wraps a single gopher-lua VM bound to one world.
// Single-goroutine access only, same affinity as the world itself.
type Engine struct {
	vm    *lua.LState
	world *ecs.World
	log   *zap.Logger
}

// NewEngine creates a Lua engine with the df API registered.
func NewEngine(world *ecs.World, log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, world: world, log: log}
	e.registerAPI()
	return e
}

// LoadDir runs all .lua files in a directory, in name order. Missing
// directories are skipped.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// RunFile executes one script.
func (e *Engine) RunFile(path string) error {
	if err := e.vm.DoFile(path); err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}

// RunString executes inline script source.
func (e *Engine) RunString(src string) error {
	return e.vm.DoString(src)
}

// BuildGlobal calls a global Lua function expected to return a scene
// table, materializes it, and returns the root entity.
func (e *Engine) BuildGlobal(name string) (ecs.EntityID, error) {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return 0, fmt.Errorf("lua function %s not found", name)
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}); err != nil {
		return 0, fmt.Errorf("lua %s: %w", name, err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return 0, fmt.Errorf("lua %s returned %s, want table", name, result.Type())
	}
	node, err := luaToNode(rt)
	if err != nil {
		return 0, fmt.Errorf("lua %s: %w", name, err)
	}
	return scene.Materialize(e.world, node)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// registerAPI installs the df table.
func (e *Engine) registerAPI() {
	df := e.vm.NewTable()

	e.vm.SetFuncs(df, map[string]lua.LGFunction{
		"create":      e.luaCreate,
		"add":         e.luaAdd,
		"remove":      e.luaRemove,
		"destroy":     e.luaDestroy,
		"flush":       e.luaFlush,
		"materialize": e.luaMaterialize,
		"log":         e.luaLog,
	})

	e.vm.SetGlobal("df", df)
}

// df.create([parent]) → entity id
func (e *Engine) luaCreate(L *lua.LState) int {
	parent := ecs.EntityID(L.OptInt64(1, 0))
	id, err := e.world.CreateEntity(parent)
	if err != nil {
		L.RaiseError("create: %v", err)
		return 0
	}
	L.Push(lua.LNumber(id))
	return 1
}

// df.add(entity, kind [, props])
func (e *Engine) luaAdd(L *lua.LState) int {
	id := ecs.EntityID(L.CheckInt64(1))
	kind := ecs.Kind(L.CheckString(2))
	var props map[string]any
	if L.GetTop() >= 3 {
		props = luaToProps(L.CheckTable(3))
	}
	c, err := component.Build(kind, props)
	if err != nil {
		L.RaiseError("add: %v", err)
		return 0
	}
	if err := e.world.Add(id, c); err != nil {
		L.RaiseError("add: %v", err)
		return 0
	}
	return 0
}

// df.remove(entity, kind)
func (e *Engine) luaRemove(L *lua.LState) int {
	id := ecs.EntityID(L.CheckInt64(1))
	kind := ecs.Kind(L.CheckString(2))
	if err := e.world.RemoveComponent(id, kind); err != nil {
		L.RaiseError("remove: %v", err)
	}
	return 0
}

// df.destroy(entity)
func (e *Engine) luaDestroy(L *lua.LState) int {
	id := ecs.EntityID(L.CheckInt64(1))
	if err := e.world.DestroyEntity(id); err != nil {
		L.RaiseError("destroy: %v", err)
	}
	return 0
}

// df.flush()
func (e *Engine) luaFlush(L *lua.LState) int {
	if err := e.world.Flush(); err != nil {
		L.RaiseError("flush: %v", err)
	}
	return 0
}

// df.materialize(tree) → root entity id
func (e *Engine) luaMaterialize(L *lua.LState) int {
	node, err := luaToNode(L.CheckTable(1))
	if err != nil {
		L.RaiseError("materialize: %v", err)
		return 0
	}
	id, err := scene.Materialize(e.world, node)
	if err != nil {
		L.RaiseError("materialize: %v", err)
		return 0
	}
	L.Push(lua.LNumber(id))
	return 1
}

// df.log(msg)
func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info("lua", zap.String("msg", L.CheckString(1)))
	return 0
}

// luaToNode converts a yaml-shaped table {tag=, props=, children=} into
// a scene node.
func luaToNode(t *lua.LTable) (*scene.Node, error) {
	tag := lua.LVAsString(t.RawGetString("tag"))
	if tag == "" {
		return nil, fmt.Errorf("scene table without tag")
	}
	n := &scene.Node{Tag: tag}
	if props, ok := t.RawGetString("props").(*lua.LTable); ok {
		n.Props = luaToProps(props)
	}
	children, ok := t.RawGetString("children").(*lua.LTable)
	if !ok {
		return n, nil
	}
	var convErr error
	children.ForEach(func(_, v lua.LValue) {
		if convErr != nil {
			return
		}
		ct, ok := v.(*lua.LTable)
		if !ok {
			convErr = fmt.Errorf("scene child is %s, want table", v.Type())
			return
		}
		child, err := luaToNode(ct)
		if err != nil {
			convErr = err
			return
		}
		n.Children = append(n.Children, child)
	})
	if convErr != nil {
		return nil, convErr
	}
	return n, nil
}

// luaToProps flattens a Lua table into factory props. String-keyed
// scalars map directly; array tables become []any.
func luaToProps(t *lua.LTable) map[string]any {
	props := make(map[string]any, 4)
	t.ForEach(func(k, v lua.LValue) {
		key := lua.LVAsString(k)
		switch val := v.(type) {
		case lua.LString:
			props[key] = string(val)
		case lua.LNumber:
			props[key] = float64(val)
		case lua.LBool:
			props[key] = bool(val)
		case *lua.LTable:
			var list []any
			val.ForEach(func(_, item lua.LValue) {
				list = append(list, lua.LVAsString(item))
			})
			props[key] = list
		}
	})
	return props
}
