////////////////////////////////////////////////////////////////////////////////
// Arena DAO: weekly merkle-gated reward distribution + proposal governance
// for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose
func main() {

}
