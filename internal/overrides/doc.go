// Package overrides provides the override document schema and its readers.
//
// An override document customizes how selected types and properties of the
// compiled program are emitted. Documents are hierarchical:
//
//	version: "1"
//	namespaces:
//	  - name: App.Models          # required
//	    display_name: Models      # optional namespace remap
//	    classes:
//	      - name: Widget          # required, generic arity as List^1
//	        display_name: MyWidget
//	        single_ctor: true
//	        properties:
//	          - name: Color
//	            get: this.c
//	            set: "this.c={0}"
//
// The same shape is accepted as XML:
//
//	<assembly>
//	  <namespace name="App.Models" Name="Models">
//	    <class name="Widget" Name="MyWidget" IsSingleCtor="true">
//	      <property name="Color">
//	        <get Template="this.c"/>
//	        <set Template="this.c={0}"/>
//	      </property>
//	    </class>
//	  </namespace>
//	</assembly>
//
// This package only turns bytes into a Document. Required-field checks and
// resolution against the compiled program belong to package loader.
package overrides
