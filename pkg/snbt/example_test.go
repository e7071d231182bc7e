package snbt_test

import (
	"fmt"

	"github.com/lodeworks/nbtkit/pkg/nbt"
	"github.com/lodeworks/nbtkit/pkg/snbt"
)

func ExampleEncode() {
	root := nbt.NewCompound()
	root.Put("health", nbt.NewFloat(20))
	root.Put("name", nbt.NewString("Steve"))

	text, _ := snbt.Encode(root)
	fmt.Println(text)
	// Output:
	// {health:20f,name:"Steve"}
}

func ExampleParse() {
	tag, _ := snbt.Parse(`{pos:[I;10,64,-30],dim:"overworld"}`)
	c := tag.(*nbt.Compound)

	pos := c.Get("pos").(*nbt.IntArray)
	fmt.Println("x:", pos.Value[0])
	fmt.Println("dim:", c.Get("dim").(*nbt.String).Value)
	// Output:
	// x: 10
	// dim: overworld
}
