/*
* The MIT License (MIT)
* =====================
*
* Copyright (c) 2015, Cagatay Dogan
*
* Permission is hereby granted, free of charge, to any person obtaining a copy
* of this software and associated documentation files (the "Software"), to deal
* in the Software without restriction, including without limitation the rights
* to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
* copies of the Software, and to permit persons to whom the Software is
* furnished to do so, subject to the following conditions:
*
* The above copyright notice and this permission notice shall be included in
* all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
* IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
* FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
* AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
* LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
* OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
* THE SOFTWARE.
 */

package tree

type KeyComparison int8

const (
	// KeyIsLess is returned as result of key comparison if the first key is less than the second key
	KeyIsLess KeyComparison = iota - 1
	// KeysAreEqual is returned as result of key comparison if the first key is equal to the second key
	KeysAreEqual
	// KeyIsGreater is returned as result of key comparison if the first key is greater than the second key
	KeyIsGreater
)

const (
	red   = byte(0)
	black = byte(1)
)

type RbKey interface {
	ComparedTo(key RbKey) KeyComparison
}

type rbNode struct {
	key    RbKey
	value  interface{}
	colour byte
	left   *rbNode
	right  *rbNode
}

// RbTree is an ordered map. It is not safe for concurrent use.
type RbTree struct {
	root  *rbNode
	count int
}

func NewRbTree() *RbTree {
	return &RbTree{}
}

func newRbNode(key RbKey, value interface{}) *rbNode {
	return &rbNode{
		key:    key,
		value:  value,
		colour: red,
	}
}

func isRed(node *rbNode) bool {
	return node != nil && node.colour == red
}

func flipSingleNodeColour(node *rbNode) {
	if node.colour == black {
		node.colour = red
	} else {
		node.colour = black
	}
}

// Flips the colours of node, and its two children
func colourFlip(node *rbNode) {
	flipSingleNodeColour(node)
	flipSingleNodeColour(node.left)
	flipSingleNodeColour(node.right)
}

func rotateLeft(node *rbNode) *rbNode {
	child := node.right
	node.right = child.left
	child.left = node
	child.colour = node.colour
	node.colour = red
	return child
}

func rotateRight(node *rbNode) *rbNode {
	child := node.left
	node.left = child.right
	child.right = node
	child.colour = node.colour
	node.colour = red
	return child
}

func balance(node *rbNode) *rbNode {
	if isRed(node.right) && !isRed(node.left) {
		node = rotateLeft(node)
	}
	if isRed(node.left) && isRed(node.left.left) {
		node = rotateRight(node)
	}
	if isRed(node.left) && isRed(node.right) {
		colourFlip(node)
	}
	return node
}

func (tree *RbTree) Count() int {
	return tree.count
}

func (tree *RbTree) IsEmpty() bool {
	return tree.root == nil
}

func (tree *RbTree) find(key RbKey) *rbNode {
	for node := tree.root; node != nil; {
		switch key.ComparedTo(node.key) {
		case KeyIsLess:
			node = node.left
		case KeyIsGreater:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

func (tree *RbTree) Get(key RbKey) (interface{}, bool) {
	if key != nil && tree.root != nil {
		node := tree.find(key)
		if node != nil {
			return node.value, true
		}
	}
	return nil, false
}

// insertNode adds the given key and value into the node
func (tree *RbTree) insertNode(node *rbNode, key RbKey, value interface{}) *rbNode {
	if node == nil {
		tree.count++
		return newRbNode(key, value)
	}

	switch key.ComparedTo(node.key) {
	case KeyIsLess:
		node.left = tree.insertNode(node.left, key, value)
	case KeyIsGreater:
		node.right = tree.insertNode(node.right, key, value)
	default:
		node.value = value
	}
	return balance(node)
}

// Insert inserts the given key and value into the tree, replacing the value
// of an equal key.
func (tree *RbTree) Insert(key RbKey, value interface{}) {
	if key != nil {
		tree.root = tree.insertNode(tree.root, key, value)
		tree.root.colour = black
	}
}

// Increment adds one to the int count stored under key, starting from zero
// for a new key, and returns the updated count.
func (tree *RbTree) Increment(key RbKey) int {
	count := 1
	if node := tree.find(key); node != nil {
		count = node.value.(int) + 1
		node.value = count
		return count
	}
	tree.Insert(key, count)
	return count
}

type RbTreeCallback func(RbKey, interface{}) bool

func traverseAll(node *rbNode, callback RbTreeCallback) bool {
	if node == nil {
		return false
	}

	if node.left != nil {
		shouldTerminate := traverseAll(node.left, callback)
		if shouldTerminate {
			return true
		}
	}

	shouldTerminate := callback(node.key, node.value)
	if shouldTerminate {
		return true
	}

	if node.right != nil {
		shouldTerminate := traverseAll(node.right, callback)
		if shouldTerminate {
			return true
		}
	}
	return false
}

// Map visits every entry in ascending key order until fn returns true.
func (tree *RbTree) Map(fn RbTreeCallback) {
	if tree.IsEmpty() {
		return
	}
	traverseAll(tree.root, fn)
}

// Float64Key orders float64 values numerically. NaN has no place in the
// order and must not be used as a key; -0 and +0 compare equal.
type Float64Key float64

func (fkey Float64Key) ComparedTo(key RbKey) KeyComparison {
	key1 := float64(fkey)
	key2 := float64(key.(Float64Key))
	switch {
	case key1 > key2:
		return KeyIsGreater
	case key1 < key2:
		return KeyIsLess
	default:
		return KeysAreEqual
	}
}
